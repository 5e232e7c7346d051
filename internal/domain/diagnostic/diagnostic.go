// Package diagnostic defines the diagnostic entity reported by analysis
// backends. Diagnostics are produced by a backend, optionally have their
// message rewritten by the rewrite engine, and are returned to the host.
// Nothing in this repository creates or destroys them.
package diagnostic

// OperationSemanticDiagnostics is the backend operation whose results are
// intercepted and rewritten. Every other operation is forwarded untouched.
const OperationSemanticDiagnostics = "getSemanticDiagnostics"

// Well-known diagnostic codes from the type checker's taxonomy.
const (
	// CodeTypeNotAssignable is reported when a value's type is not
	// assignable to the declared type of its target.
	CodeTypeNotAssignable = 2322

	// CodeArgumentNotAssignable is reported when a call argument's type is
	// not assignable to the parameter type.
	CodeArgumentNotAssignable = 2345
)

// Diagnostic is a single issue reported by an analysis backend.
type Diagnostic struct {
	Code     int      `json:"code"`
	Message  Message  `json:"messageText"`
	Severity Severity `json:"category"`
	File     string   `json:"file,omitempty"`
	Range    Range    `json:"range"`
	Source   string   `json:"source,omitempty"`
}

// WithMessage returns a copy of d carrying the given message. All other
// fields are preserved.
func (d Diagnostic) WithMessage(m Message) Diagnostic {
	d.Message = m
	return d
}

// Position is a zero-based line/character offset within a file.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a half-open span between two positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}
