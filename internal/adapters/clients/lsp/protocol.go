package lsp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

const jsonrpcVersion = "2.0"

// message is the union of every JSON-RPC message shape. A message with a
// method and an id is a server request, a method without an id is a
// notification, and an id without a method is a response.
type message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

type outgoingRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type outgoingNotification struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type outgoingResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result"`
}

type outgoingErrorResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Error   *RPCError       `json:"error"`
}

// RequestHandler answers a request initiated by the peer. The returned value
// is sent back as the result, or as an error response when it is a *RPCError.
type RequestHandler func(method string, params json.RawMessage) any

// NotificationHandler receives server notifications.
type NotificationHandler func(method string, params json.RawMessage)

// Protocol speaks JSON-RPC 2.0 with Content-Length framing over a reader
// (server stdout) and a writer (server stdin). It is safe for concurrent
// use; ReadLoop must run on exactly one goroutine.
type Protocol struct {
	reader *bufio.Reader
	writer io.Writer

	writeMu sync.Mutex
	nextID  atomic.Int64

	pendingMu sync.Mutex
	pending   map[int64]chan message
	closed    atomic.Bool

	onRequest      RequestHandler
	onNotification NotificationHandler
}

// NewProtocol creates a Protocol. Either handler may be nil; server requests
// are then answered with a null result and notifications are dropped.
func NewProtocol(r io.Reader, w io.Writer, onRequest RequestHandler, onNotification NotificationHandler) *Protocol {
	return &Protocol{
		reader:         bufio.NewReader(r),
		writer:         w,
		pending:        make(map[int64]chan message),
		onRequest:      onRequest,
		onNotification: onNotification,
	}
}

// Call sends a request and waits for its response. When result is non-nil
// the response result is decoded into it. Server error responses are
// returned as *RPCError.
func (p *Protocol) Call(ctx context.Context, method string, params, result any) error {
	id := p.nextID.Add(1)
	respCh := make(chan message, 1)

	p.pendingMu.Lock()
	if p.closed.Load() {
		p.pendingMu.Unlock()
		return ErrServerNotRunning
	}
	p.pending[id] = respCh
	p.pendingMu.Unlock()

	defer func() {
		p.pendingMu.Lock()
		delete(p.pending, id)
		p.pendingMu.Unlock()
	}()

	req := outgoingRequest{JSONRPC: jsonrpcVersion, ID: id, Method: method, Params: params}
	if err := p.write(req); err != nil {
		return fmt.Errorf("writing %s request: %w", method, err)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %w", ErrRequestTimeout, method, ctx.Err())
	case resp, ok := <-respCh:
		if !ok {
			return ErrServerNotRunning
		}
		if resp.Error != nil {
			return resp.Error
		}
		if result == nil || len(resp.Result) == 0 {
			return nil
		}
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
		return nil
	}
}

// Notify sends a notification.
func (p *Protocol) Notify(method string, params any) error {
	if p.closed.Load() {
		return ErrServerNotRunning
	}
	return p.write(outgoingNotification{JSONRPC: jsonrpcVersion, Method: method, Params: params})
}

func (p *Protocol) write(v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if _, err := fmt.Fprintf(p.writer, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := p.writer.Write(body); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}

// ReadLoop reads and dispatches messages until the stream ends, ctx is
// canceled, or the protocol is closed. End of stream while open returns
// ErrServerCrashed.
func (p *Protocol) ReadLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		body, err := p.read()
		if err != nil {
			if p.closed.Load() {
				return nil
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return ErrServerCrashed
			}
			return fmt.Errorf("read: %w", err)
		}

		var msg message
		if err := json.Unmarshal(body, &msg); err != nil {
			// A malformed frame is skipped; the framing itself is intact.
			continue
		}
		p.dispatch(msg)
	}
}

func (p *Protocol) read() ([]byte, error) {
	contentLength := -1

	for {
		line, err := p.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid Content-Length %q", value)
		}
		contentLength = n
	}

	if contentLength < 0 {
		return nil, errors.New("missing Content-Length header")
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(p.reader, body); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (p *Protocol) dispatch(msg message) {
	hasID := len(msg.ID) > 0 && !bytes.Equal(msg.ID, []byte("null"))

	switch {
	case msg.Method != "" && hasID:
		var result any
		if p.onRequest != nil {
			result = p.onRequest(msg.Method, msg.Params)
		}
		if rpcErr, ok := result.(*RPCError); ok {
			_ = p.write(outgoingErrorResponse{JSONRPC: jsonrpcVersion, ID: msg.ID, Error: rpcErr})
			return
		}
		_ = p.write(outgoingResponse{JSONRPC: jsonrpcVersion, ID: msg.ID, Result: result})

	case msg.Method != "":
		if p.onNotification != nil {
			p.onNotification(msg.Method, msg.Params)
		}

	case hasID:
		id, err := strconv.ParseInt(string(msg.ID), 10, 64)
		if err != nil {
			return
		}
		p.pendingMu.Lock()
		defer p.pendingMu.Unlock()
		if ch, ok := p.pending[id]; ok {
			select {
			case ch <- msg:
			default:
			}
		}
	}
}

// Close fails all pending calls with ErrServerNotRunning and rejects new
// ones. It does not close the underlying reader or writer.
func (p *Protocol) Close() {
	p.pendingMu.Lock()
	defer p.pendingMu.Unlock()

	if p.closed.Swap(true) {
		return
	}
	for id, ch := range p.pending {
		close(ch)
		delete(p.pending, id)
	}
}
