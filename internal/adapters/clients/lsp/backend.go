// Package lsp implements the analysis backend port on top of a language
// server spawned as a child process and driven over stdio with JSON-RPC.
//
// The semantic diagnostics operation is served from textDocument/diagnostic
// when the server supports pull diagnostics, and from the most recent
// textDocument/publishDiagnostics notification otherwise. Every other
// operation is forwarded as a JSON-RPC request of the same name.
package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/jsamuelsen11/brandgate/internal/domain"
	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
	"github.com/jsamuelsen11/brandgate/internal/platform/config"
	"github.com/jsamuelsen11/brandgate/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AnalysisBackend = (*Backend)(nil)
	_ ports.HealthChecker   = (*Backend)(nil)
)

const (
	healthName = "language-server"

	defaultShutdownTimeout = 5 * time.Second
)

// State is the lifecycle state of the language server process.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateReady
	StateStopping
	StateStopped
	StateCrashed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateReady:
		return "ready"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	case StateCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// pipes is the server's stdio as seen from the client side.
type pipes struct {
	stdout io.Reader
	stdin  io.WriteCloser
	wait   func() error
	kill   func() error
}

// publishState collects pushed diagnostics for one document version.
// ready is closed once a publish for that version arrives.
type publishState struct {
	version     int
	diagnostics []lspDiagnostic
	ready       chan struct{}
}

// document tracks one open text document. turn is a one-slot semaphore:
// a diagnostics call holds it from didOpen/didChange until its result
// arrives, so calls for the same file run one after another and each sees
// the publish for the version it sent.
type document struct {
	turn    chan struct{}
	opened  bool
	version int
	pending *publishState
}

func newDocument() *document {
	return &document{turn: make(chan struct{}, 1)}
}

func (d *document) acquire(ctx context.Context) error {
	select {
	case d.turn <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *document) release() {
	<-d.turn
}

// Backend is a ports.AnalysisBackend backed by a stdio language server.
type Backend struct {
	cfg    config.LSPConfig
	root   string
	logger *slog.Logger
	spawn  func(ctx context.Context) (*pipes, error)

	mu       sync.RWMutex
	state    State
	proto    *Protocol
	io       *pipes
	caps     serverCapabilities
	cancel   context.CancelFunc
	readDone chan struct{}

	docsMu sync.Mutex
	docs   map[string]*document
}

// New creates a Backend. The process is not started until Start.
func New(cfg config.LSPConfig, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root := cfg.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	b := &Backend{
		cfg:    cfg,
		root:   root,
		logger: logger,
		docs:   make(map[string]*document),
	}
	b.spawn = b.spawnProcess
	return b
}

func (b *Backend) spawnProcess(ctx context.Context) (*pipes, error) {
	path, err := exec.LookPath(b.cfg.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrServerNotInstalled, b.cfg.Command)
	}

	cmd := exec.CommandContext(ctx, path, b.cfg.Args...)
	cmd.Dir = b.root
	cmd.Stderr = io.Discard

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", path, err)
	}

	return &pipes{
		stdout: stdout,
		stdin:  stdin,
		wait:   cmd.Wait,
		kill:   func() error { return cmd.Process.Kill() },
	}, nil
}

// Start spawns the server and performs the initialize handshake, bounded by
// the configured start timeout.
func (b *Backend) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.state != StateIdle {
		b.mu.Unlock()
		return ErrAlreadyStarted
	}
	b.state = StateStarting
	b.mu.Unlock()

	b.logger.InfoContext(ctx, "starting language server",
		slog.String("command", b.cfg.Command),
		slog.Any("args", b.cfg.Args),
		slog.String("root", b.root),
	)

	procCtx, cancel := context.WithCancel(context.Background())
	p, err := b.spawn(procCtx)
	if err != nil {
		cancel()
		b.setState(StateStopped)
		return err
	}

	proto := NewProtocol(p.stdout, p.stdin, b.handleRequest, b.handleNotification)
	readDone := make(chan struct{})

	b.mu.Lock()
	b.proto = proto
	b.io = p
	b.cancel = cancel
	b.readDone = readDone
	b.mu.Unlock()

	go b.readLoop(procCtx, proto, readDone)

	startCtx := ctx
	if b.cfg.StartTimeout > 0 {
		var cancelStart context.CancelFunc
		startCtx, cancelStart = context.WithTimeout(ctx, b.cfg.StartTimeout)
		defer cancelStart()
	}

	caps, err := b.initialize(startCtx, proto)
	if err != nil {
		_ = b.Shutdown(context.Background())
		return fmt.Errorf("%w: %w", ErrInitializeFailed, err)
	}

	b.mu.Lock()
	b.caps = caps
	b.state = StateReady
	b.mu.Unlock()

	b.logger.InfoContext(ctx, "language server ready",
		slog.Bool("pull_diagnostics", caps.pullDiagnostics()),
	)
	return nil
}

func (b *Backend) readLoop(ctx context.Context, proto *Protocol, done chan struct{}) {
	defer close(done)

	err := proto.ReadLoop(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	b.mu.Lock()
	wasRunning := b.state == StateReady || b.state == StateStarting
	if wasRunning {
		b.state = StateCrashed
	}
	b.mu.Unlock()
	proto.Close()

	if wasRunning {
		b.logger.Error("language server connection lost", slog.Any("error", err))
	}
}

func (b *Backend) initialize(ctx context.Context, proto *Protocol) (serverCapabilities, error) {
	rootURI := fileURI(b.root)
	params := initializeParams{
		ProcessID: os.Getpid(),
		RootURI:   rootURI,
		Capabilities: clientCaps{
			TextDocument: textDocumentClientCaps{
				Synchronization:    syncClientCaps{DidSave: true},
				PublishDiagnostics: publishClientCaps{VersionSupport: b.cfg.PublishVersions},
				Diagnostic:         &struct{}{},
			},
		},
		WorkspaceFolders: []workspaceFolder{{URI: rootURI, Name: filepath.Base(b.root)}},
	}

	var result initializeResult
	if err := proto.Call(ctx, "initialize", params, &result); err != nil {
		return serverCapabilities{}, err
	}
	if err := proto.Notify("initialized", struct{}{}); err != nil {
		return serverCapabilities{}, err
	}
	return result.Capabilities, nil
}

// Shutdown sends shutdown and exit, then waits for the process, killing it
// after the configured shutdown timeout. Calling Shutdown more than once is
// safe.
func (b *Backend) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	if b.state == StateStopping || b.state == StateStopped || b.state == StateIdle {
		b.mu.Unlock()
		return nil
	}
	b.state = StateStopping
	proto, p, cancel, readDone := b.proto, b.io, b.cancel, b.readDone
	b.mu.Unlock()

	b.logger.InfoContext(ctx, "shutting down language server")

	timeout := b.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	if proto != nil {
		callCtx, cancelCall := context.WithTimeout(ctx, timeout)
		_ = proto.Call(callCtx, "shutdown", nil, nil)
		cancelCall()
		_ = proto.Notify("exit", nil)
		proto.Close()
	}

	if p != nil {
		_ = p.stdin.Close()
		if p.wait != nil {
			done := make(chan error, 1)
			go func() { done <- p.wait() }()
			select {
			case <-done:
			case <-time.After(timeout):
				if p.kill != nil {
					_ = p.kill()
				}
				<-done
			}
		}
	}

	if cancel != nil {
		cancel()
	}
	if readDone != nil {
		select {
		case <-readDone:
		case <-time.After(time.Second):
		}
	}

	b.setState(StateStopped)
	return nil
}

// State returns the current lifecycle state.
func (b *Backend) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

func (b *Backend) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// Name implements ports.HealthChecker.
func (b *Backend) Name() string {
	return healthName
}

// HealthCheck reports healthy only while the server is ready.
func (b *Backend) HealthCheck(_ context.Context) error {
	if s := b.State(); s != StateReady {
		return fmt.Errorf("%w: state %s", ErrServerNotRunning, s)
	}
	return nil
}

// Invoke implements ports.AnalysisBackend.
func (b *Backend) Invoke(ctx context.Context, operation string, args ...any) (any, error) {
	proto, caps, err := b.ready()
	if err != nil {
		return nil, err
	}

	if b.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.RequestTimeout)
		defer cancel()
	}

	if operation == diagnostic.OperationSemanticDiagnostics {
		return b.semanticDiagnostics(ctx, proto, caps, args)
	}

	if len(args) > 1 {
		return nil, domain.NewValidationError("args",
			fmt.Sprintf("%s accepts at most one params value, got %d", operation, len(args)))
	}
	var params any
	if len(args) == 1 {
		params = args[0]
	}

	var result json.RawMessage
	if err := proto.Call(ctx, operation, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (b *Backend) ready() (*Protocol, serverCapabilities, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	switch b.state {
	case StateReady:
		return b.proto, b.caps, nil
	case StateCrashed:
		return nil, serverCapabilities{}, ErrServerCrashed
	default:
		return nil, serverCapabilities{}, ErrServerNotRunning
	}
}

func (b *Backend) semanticDiagnostics(ctx context.Context, proto *Protocol, caps serverCapabilities, args []any) ([]diagnostic.Diagnostic, error) {
	if len(args) != 1 {
		return nil, domain.NewValidationError("args",
			fmt.Sprintf("%s takes exactly one file argument, got %d", diagnostic.OperationSemanticDiagnostics, len(args)))
	}
	file, ok := args[0].(string)
	if !ok || file == "" {
		return nil, domain.NewValidationError("args[0]", "must be a non-empty file path")
	}

	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.root, path)
	}
	uri := fileURI(path)

	doc := b.document(uri)
	if err := doc.acquire(ctx); err != nil {
		return nil, fmt.Errorf("%w: waiting for %s: %w", ErrRequestTimeout, uri, err)
	}
	defer doc.release()

	state, err := b.syncDocument(proto, doc, path, uri)
	if err != nil {
		return nil, err
	}

	var items []lspDiagnostic
	if caps.pullDiagnostics() {
		var report documentDiagnosticReport
		params := documentDiagnosticParams{TextDocument: textDocumentIdentifier{URI: uri}}
		if err := proto.Call(ctx, "textDocument/diagnostic", params, &report); err != nil {
			return nil, err
		}
		items = report.Items
	} else {
		items, err = b.awaitPublished(ctx, uri, state)
		if err != nil {
			return nil, err
		}
	}

	return toDomain(file, items), nil
}

func (b *Backend) document(uri string) *document {
	b.docsMu.Lock()
	defer b.docsMu.Unlock()

	doc, ok := b.docs[uri]
	if !ok {
		doc = newDocument()
		b.docs[uri] = doc
	}
	return doc
}

// syncDocument opens the document on first use and sends its current
// contents as a full change afterwards, so results reflect the file on disk.
// The caller holds doc's turn.
func (b *Backend) syncDocument(proto *Protocol, doc *document, path, uri string) (*publishState, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	b.docsMu.Lock()
	doc.version++
	version, opened := doc.version, doc.opened
	state := &publishState{version: version, ready: make(chan struct{})}
	doc.pending = state
	b.docsMu.Unlock()

	if !opened {
		err = proto.Notify("textDocument/didOpen", didOpenParams{TextDocument: textDocumentItem{
			URI:        uri,
			LanguageID: languageID(path),
			Version:    version,
			Text:       string(text),
		}})
	} else {
		err = proto.Notify("textDocument/didChange", didChangeParams{
			TextDocument:   versionedTextDocumentIdentifier{URI: uri, Version: version},
			ContentChanges: []contentChange{{Text: string(text)}},
		})
	}
	if err != nil {
		return nil, err
	}

	b.docsMu.Lock()
	doc.opened = true
	b.docsMu.Unlock()
	return state, nil
}

func (b *Backend) awaitPublished(ctx context.Context, uri string, state *publishState) ([]lspDiagnostic, error) {
	select {
	case <-state.ready:
		b.docsMu.Lock()
		defer b.docsMu.Unlock()
		return state.diagnostics, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: waiting for diagnostics on %s: %w", ErrRequestTimeout, uri, ctx.Err())
	}
}

func (b *Backend) handleNotification(method string, params json.RawMessage) {
	if method != "textDocument/publishDiagnostics" {
		return
	}

	var p publishDiagnosticsParams
	if err := json.Unmarshal(params, &p); err != nil {
		b.logger.Warn("invalid publishDiagnostics notification", slog.Any("error", err))
		return
	}

	b.docsMu.Lock()
	defer b.docsMu.Unlock()

	doc, ok := b.docs[p.URI]
	if !ok || doc.pending == nil {
		return
	}
	state := doc.pending
	if !b.acceptPublish(p.Version, state.version) {
		return
	}

	state.diagnostics = p.Diagnostics
	close(state.ready)
	doc.pending = nil
}

// acceptPublish decides whether a publish answers the pending version. With
// version support advertised, an unversioned publish may describe older
// contents and is ignored; a newer version also answers an older wait.
func (b *Backend) acceptPublish(published *int, pending int) bool {
	if published == nil {
		return !b.cfg.PublishVersions
	}
	return *published >= pending
}

// handleRequest answers server-initiated requests. Configuration requests
// get one null entry per item; everything else gets a null result.
func (b *Backend) handleRequest(method string, params json.RawMessage) any {
	if method == "workspace/configuration" {
		var p configurationParams
		if err := json.Unmarshal(params, &p); err == nil {
			return make([]any, len(p.Items))
		}
	}
	return nil
}

func fileURI(path string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func languageID(path string) string {
	switch filepath.Ext(path) {
	case ".tsx":
		return "typescriptreact"
	case ".js", ".mjs", ".cjs":
		return "javascript"
	case ".jsx":
		return "javascriptreact"
	default:
		return "typescript"
	}
}
