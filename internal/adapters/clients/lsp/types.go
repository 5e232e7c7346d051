package lsp

import "encoding/json"

// Wire types for the subset of the Language Server Protocol the backend uses.
// Field names follow the protocol's JSON.

type position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type lspRange struct {
	Start position `json:"start"`
	End   position `json:"end"`
}

type lspDiagnostic struct {
	Range    lspRange        `json:"range"`
	Severity int             `json:"severity,omitempty"`
	Code     json.RawMessage `json:"code,omitempty"`
	Source   string          `json:"source,omitempty"`
	Message  string          `json:"message"`
}

type textDocumentIdentifier struct {
	URI string `json:"uri"`
}

type versionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int    `json:"version"`
}

type textDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

type didOpenParams struct {
	TextDocument textDocumentItem `json:"textDocument"`
}

type contentChange struct {
	Text string `json:"text"`
}

type didChangeParams struct {
	TextDocument   versionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []contentChange                 `json:"contentChanges"`
}

type publishDiagnosticsParams struct {
	URI         string          `json:"uri"`
	Version     *int            `json:"version,omitempty"`
	Diagnostics []lspDiagnostic `json:"diagnostics"`
}

type documentDiagnosticParams struct {
	TextDocument textDocumentIdentifier `json:"textDocument"`
}

// documentDiagnosticReport is the result of textDocument/diagnostic. Only
// "full" reports carry items; the backend never sends a previousResultId, so
// "unchanged" is not expected.
type documentDiagnosticReport struct {
	Kind  string          `json:"kind"`
	Items []lspDiagnostic `json:"items"`
}

type workspaceFolder struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

type initializeParams struct {
	ProcessID        int               `json:"processId"`
	RootURI          string            `json:"rootUri"`
	Capabilities     clientCaps        `json:"capabilities"`
	WorkspaceFolders []workspaceFolder `json:"workspaceFolders"`
}

type clientCaps struct {
	TextDocument textDocumentClientCaps `json:"textDocument"`
}

type textDocumentClientCaps struct {
	Synchronization    syncClientCaps    `json:"synchronization"`
	PublishDiagnostics publishClientCaps `json:"publishDiagnostics"`
	Diagnostic         *struct{}         `json:"diagnostic,omitempty"`
}

type syncClientCaps struct {
	DidSave bool `json:"didSave"`
}

type publishClientCaps struct {
	VersionSupport bool `json:"versionSupport"`
}

type initializeResult struct {
	Capabilities serverCapabilities `json:"capabilities"`
}

type serverCapabilities struct {
	// DiagnosticProvider is present when the server supports pull
	// diagnostics (textDocument/diagnostic).
	DiagnosticProvider json.RawMessage `json:"diagnosticProvider,omitempty"`
}

func (c serverCapabilities) pullDiagnostics() bool {
	return len(c.DiagnosticProvider) > 0 && string(c.DiagnosticProvider) != "null" &&
		string(c.DiagnosticProvider) != "false"
}

type configurationParams struct {
	Items []json.RawMessage `json:"items"`
}
