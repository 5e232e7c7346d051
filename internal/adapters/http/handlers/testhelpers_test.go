package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
)

const (
	brandArgumentMsg = `Argument of type 'string' is not assignable to parameter of type 'UserId'. Property '__brand' is missing in type 'String'.`
	rewrittenMsg     = "This argument is missing a brand required by the parameter."
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func brandDiagnostic() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Code:     diagnostic.CodeArgumentNotAssignable,
		Message:  diagnostic.Text(brandArgumentMsg),
		Severity: diagnostic.SeverityError,
		File:     "src/users.ts",
		Range: diagnostic.Range{
			Start: diagnostic.Position{Line: 12, Character: 4},
			End:   diagnostic.Position{Line: 12, Character: 10},
		},
		Source: "ts",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
