package lsp

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/brandgate/internal/domain"
)

// Sentinel errors. Each wraps a domain sentinel so inbound adapters can map
// them without importing this package.
var (
	ErrServerNotRunning   = fmt.Errorf("%w: language server not running", domain.ErrUnavailable)
	ErrServerNotInstalled = fmt.Errorf("%w: language server not installed", domain.ErrUnavailable)
	ErrInitializeFailed   = fmt.Errorf("%w: language server initialize failed", domain.ErrUnavailable)
	ErrRequestTimeout     = fmt.Errorf("%w: language server request timed out", domain.ErrUnavailable)
	ErrServerCrashed      = fmt.Errorf("%w: language server crashed", domain.ErrUnavailable)
	ErrAlreadyStarted     = errors.New("language server already started")
)

// JSON-RPC and LSP error codes.
const (
	codeParseError           = -32700
	codeInvalidRequest       = -32600
	codeMethodNotFound       = -32601
	codeInvalidParams        = -32602
	codeServerNotInitialized = -32002
	codeRequestCancelled     = -32800
	codeContentModified      = -32801
)

// RPCError is an error response returned by the language server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("language server error %d: %s (data: %v)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("language server error %d: %s", e.Code, e.Message)
}

// Unwrap maps protocol error codes onto domain sentinels.
func (e *RPCError) Unwrap() error {
	switch e.Code {
	case codeMethodNotFound:
		return domain.ErrNotFound
	case codeInvalidParams, codeInvalidRequest, codeParseError:
		return domain.ErrValidation
	case codeServerNotInitialized, codeRequestCancelled, codeContentModified:
		return domain.ErrUnavailable
	default:
		return nil
	}
}
