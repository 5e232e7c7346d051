package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/brandgate/internal/adapters/http/dto"
	"github.com/jsamuelsen11/brandgate/internal/ports"
)

// GatewayHandler handles HTTP requests for backend operations, diagnostics,
// and the rewrite rules.
type GatewayHandler struct {
	svc ports.GatewayService
}

// NewGatewayHandler creates a new GatewayHandler with the given service port.
func NewGatewayHandler(svc ports.GatewayService) *GatewayHandler {
	return &GatewayHandler{svc: svc}
}

// Invoke handles POST /api/v1/operations/{operation}. An empty body is
// treated as an operation without arguments.
func (h *GatewayHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	op, err := parseOperation(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.InvokeRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	result, err := h.svc.Invoke(r.Context(), op, req.Args)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOperationResponse(op, result))
}

// Diagnostics handles POST /api/v1/diagnostics.
func (h *GatewayHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	var req dto.DiagnosticsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	diags, err := h.svc.Diagnostics(r.Context(), req.File)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDiagnosticsResponse(req.File, diags))
}

// DiagnosticsBatch handles POST /api/v1/diagnostics/batch. Per-file failures
// are reported in the body with a 200 status.
func (h *GatewayHandler) DiagnosticsBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchDiagnosticsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.DiagnosticsBatch(r.Context(), req.Files)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBatchDiagnosticsResponse(result))
}

// Rewrite handles POST /api/v1/rewrite.
func (h *GatewayHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req dto.RewriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rewritten := h.svc.Rewrite(r.Context(), req.ToDomain())
	writeJSON(w, http.StatusOK, dto.ToDiagnosticsResponse("", rewritten))
}

// Explain handles POST /api/v1/rewrite/explain.
func (h *GatewayHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req dto.RewriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	diags := req.ToDomain()
	results := h.svc.Explain(r.Context(), diags)
	writeJSON(w, http.StatusOK, dto.ToExplainResponse(diags, results))
}

// Rules handles GET /api/v1/rules.
func (h *GatewayHandler) Rules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToRulesResponse(h.svc.Rules(r.Context())))
}
