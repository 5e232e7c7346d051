package lsp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/brandgate/internal/domain"
)

// connect wires two Protocols back to back over in-memory pipes and runs
// both read loops until the test ends.
func connect(t *testing.T, clientReq, serverReq RequestHandler, clientNote, serverNote NotificationHandler) (client, server *Protocol) {
	t.Helper()

	s2cR, s2cW := io.Pipe()
	c2sR, c2sW := io.Pipe()

	client = NewProtocol(s2cR, c2sW, clientReq, clientNote)
	server = NewProtocol(c2sR, s2cW, serverReq, serverNote)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = client.ReadLoop(ctx) }()
	go func() { _ = server.ReadLoop(ctx) }()

	t.Cleanup(func() {
		cancel()
		client.Close()
		server.Close()
		_ = s2cW.Close()
		_ = c2sW.Close()
	})
	return client, server
}

func TestProtocol_CallDecodesResult(t *testing.T) {
	t.Parallel()

	client, _ := connect(t, nil, func(method string, params json.RawMessage) any {
		var in map[string]int
		_ = json.Unmarshal(params, &in)
		return map[string]any{"method": method, "sum": in["a"] + in["b"]}
	}, nil, nil)

	var got struct {
		Method string `json:"method"`
		Sum    int    `json:"sum"`
	}
	err := client.Call(context.Background(), "math/add", map[string]int{"a": 2, "b": 3}, &got)
	require.NoError(t, err)

	assert.Equal(t, "math/add", got.Method)
	assert.Equal(t, 5, got.Sum)
}

func TestProtocol_ErrorResponseMapsToDomain(t *testing.T) {
	t.Parallel()

	client, _ := connect(t, nil, func(method string, _ json.RawMessage) any {
		return &RPCError{Code: codeMethodNotFound, Message: "no handler for " + method}
	}, nil, nil)

	err := client.Call(context.Background(), "custom/unknown", nil, nil)

	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr), "error type = %T, want *RPCError", err)
	assert.Equal(t, codeMethodNotFound, rpcErr.Code)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProtocol_NotificationsReachPeer(t *testing.T) {
	t.Parallel()

	got := make(chan string, 1)
	client, _ := connect(t, nil, nil, nil, func(method string, params json.RawMessage) {
		got <- method + " " + string(params)
	})

	require.NoError(t, client.Notify("initialized", map[string]bool{"ok": true}))

	select {
	case v := <-got:
		assert.Equal(t, `initialized {"ok":true}`, v)
	case <-time.After(2 * time.Second):
		t.Fatal("notification not delivered")
	}
}

func TestProtocol_AnswersPeerRequests(t *testing.T) {
	t.Parallel()

	_, server := connect(t, func(method string, _ json.RawMessage) any {
		if method == "workspace/configuration" {
			return []any{nil, nil}
		}
		return nil
	}, nil, nil, nil)

	var got []json.RawMessage
	err := server.Call(context.Background(), "workspace/configuration", configurationParams{}, &got)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProtocol_CallTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	client, _ := connect(t, nil, func(string, json.RawMessage) any {
		<-release
		return nil
	}, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.Call(ctx, "slow/op", nil, nil)
	assert.True(t, errors.Is(err, ErrRequestTimeout), "error = %v, want ErrRequestTimeout", err)
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
}

func TestProtocol_CloseFailsPendingCalls(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	t.Cleanup(func() { close(release) })

	client, _ := connect(t, nil, func(string, json.RawMessage) any {
		close(started)
		<-release
		return nil
	}, nil, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- client.Call(context.Background(), "slow/op", nil, nil) }()

	<-started
	client.Close()

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, ErrServerNotRunning), "error = %v, want ErrServerNotRunning", err)
	case <-time.After(2 * time.Second):
		t.Fatal("pending call not released by Close")
	}

	assert.ErrorIs(t, client.Call(context.Background(), "after/close", nil, nil), ErrServerNotRunning)
	assert.ErrorIs(t, client.Notify("after/close", nil), ErrServerNotRunning)
}

func TestProtocol_WriteFraming(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewProtocol(strings.NewReader(""), &buf, nil, nil)

	require.NoError(t, p.Notify("exit", nil))

	body := `{"jsonrpc":"2.0","method":"exit"}`
	assert.Equal(t, "Content-Length: 33\r\n\r\n"+body, buf.String())
}

func TestProtocol_ReadLoopSkipsMalformedFrames(t *testing.T) {
	t.Parallel()

	valid := `{"jsonrpc":"2.0","method":"window/logMessage","params":{"type":3}}`
	stream := "content-length: 2\r\n\r\n{x" +
		"Content-Type: application/vscode-jsonrpc\r\nContent-Length: " + strconv.Itoa(len(valid)) + "\r\n\r\n" + valid

	var (
		mu      sync.Mutex
		methods []string
	)
	p := NewProtocol(strings.NewReader(stream), io.Discard, nil, func(method string, _ json.RawMessage) {
		mu.Lock()
		methods = append(methods, method)
		mu.Unlock()
	})

	err := p.ReadLoop(context.Background())

	assert.ErrorIs(t, err, ErrServerCrashed)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"window/logMessage"}, methods)
}

func TestProtocol_ReadLoopMissingLength(t *testing.T) {
	t.Parallel()

	p := NewProtocol(strings.NewReader("X-Other: 1\r\n\r\n{}"), io.Discard, nil, nil)

	err := p.ReadLoop(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing Content-Length")
}

func TestProtocol_ReadLoopAfterCloseReturnsNil(t *testing.T) {
	t.Parallel()

	p := NewProtocol(strings.NewReader(""), io.Discard, nil, nil)
	p.Close()

	assert.NoError(t, p.ReadLoop(context.Background()))
}
