package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/models"
	"github.com/vendorops/vos-engine/pkg/services"
)

// PendingOrdersService is the report surface this handler depends on.
type PendingOrdersService interface {
	PendingOrders(ctx context.Context, req models.ReportRequest) (*services.PendingOrdersResponse, error)
}

// PendingOrdersHandler serves the pending-orders report.
type PendingOrdersHandler struct {
	svc         PendingOrdersService
	logger      *zap.Logger
	development bool
}

// NewPendingOrdersHandler creates a new PendingOrdersHandler.
func NewPendingOrdersHandler(svc PendingOrdersService, logger *zap.Logger, development bool) *PendingOrdersHandler {
	return &PendingOrdersHandler{svc: svc, logger: logger, development: development}
}

// RegisterRoutes registers the handler's routes on the given mux.
func (h *PendingOrdersHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/pending-orders", h.PendingOrders)
}

// PendingOrders handles GET /api/pending-orders. The request is fully parsed
// and validated before any database work; a missing vendorId never reaches
// the repository.
func (h *PendingOrdersHandler) PendingOrders(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		if writeErr := RenderError(w, err, h.development); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	resp, err := h.svc.PendingOrders(r.Context(), req)
	if err != nil {
		h.logger.Error("Pending orders report failed",
			zap.Int("vendorId", req.VendorID),
			zap.Error(err))
		if writeErr := RenderError(w, err, h.development); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode pending orders response", zap.Error(err))
	}
}
