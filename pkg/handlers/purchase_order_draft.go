package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/models"
	"github.com/vendorops/vos-engine/pkg/services"
)

// DraftOrdersService is the report surface this handler depends on.
type DraftOrdersService interface {
	DraftOrders(ctx context.Context, category models.DraftCategory, vendorID int) (*services.DraftOrdersResponse, error)
}

// PurchaseOrderDraftHandler serves the purchase-order-draft report.
type PurchaseOrderDraftHandler struct {
	svc         DraftOrdersService
	logger      *zap.Logger
	development bool
}

// NewPurchaseOrderDraftHandler creates a new PurchaseOrderDraftHandler.
func NewPurchaseOrderDraftHandler(svc DraftOrdersService, logger *zap.Logger, development bool) *PurchaseOrderDraftHandler {
	return &PurchaseOrderDraftHandler{svc: svc, logger: logger, development: development}
}

// RegisterRoutes registers the handler's routes on the given mux.
func (h *PurchaseOrderDraftHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/purchase-order-draft", h.DraftOrders)
}

// DraftOrders handles GET /api/purchase-order-draft. An omitted category
// defaults to Material; an unknown one is rejected outright, unlike the
// sort-column fallback on the pending report.
func (h *PurchaseOrderDraftHandler) DraftOrders(w http.ResponseWriter, r *http.Request) {
	vendorID, err := parseVendorID(r)
	if err != nil {
		if writeErr := RenderError(w, err, h.development); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	category, err := models.ParseDraftCategory(r.URL.Query().Get("category"))
	if err != nil {
		if writeErr := RenderError(w, err, h.development); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	resp, err := h.svc.DraftOrders(r.Context(), category, vendorID)
	if err != nil {
		h.logger.Error("Purchase order draft report failed",
			zap.Int("vendorId", vendorID),
			zap.String("category", string(category)),
			zap.Error(err))
		if writeErr := RenderError(w, err, h.development); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode draft orders response", zap.Error(err))
	}
}
