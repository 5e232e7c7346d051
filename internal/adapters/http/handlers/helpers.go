package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/brandgate/internal/adapters/http/dto"
	"github.com/jsamuelsen11/brandgate/internal/domain"
)

// maxOperationNameLen bounds the {operation} path parameter.
const maxOperationNameLen = 128

// parseOperation extracts the operation name from the chi URL params.
func parseOperation(r *http.Request) (string, error) {
	op := chi.URLParam(r, "operation")
	switch {
	case op == "":
		return "", domain.NewValidationError("operation", "is required")
	case len(op) > maxOperationNameLen:
		return "", domain.NewValidationError("operation", "is too long")
	case strings.ContainsAny(op, " \t\r\n"):
		return "", domain.NewValidationError("operation", "must not contain whitespace")
	}
	return op, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body.
// Diagnostics payloads for large files can be sizable, so this is 4 MB.
const maxJSONBodyBytes = 4 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes. On failure, it writes a 400 error response
// and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst, false)
}

// decodeOptionalBody is decodeJSONBody for endpoints whose body may be
// omitted entirely; dst is left at its zero value in that case.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
	return false
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
