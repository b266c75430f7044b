package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/models"
	"github.com/vendorops/vos-engine/pkg/validation"
)

// AuthService is the credential surface this handler depends on.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.VendorProfile, error)
	ListVendors(ctx context.Context) ([]models.VendorSummary, error)
}

// LoginRequest is the login payload. The frontend posts the field as
// BusinessEmail; Go's decoder matches json names case-insensitively, so
// both casings land here.
type LoginRequest struct {
	BusinessEmail string `json:"businessEmail" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
}

// AuthHandler serves vendor login and the vendor debug listing.
type AuthHandler struct {
	svc         AuthService
	logger      *zap.Logger
	development bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc AuthService, logger *zap.Logger, development bool) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger, development: development}
}

// RegisterRoutes registers the handler's routes on the given mux. The mux is
// expected to already sit behind the auth rate limiter for the login path.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users/login", h.Login)
	mux.HandleFunc("GET /api/users/vendors", h.ListVendors)
}

// Login handles POST /api/users/login. Invalid credentials of any kind get
// the same 401; the distinction lives only in server logs.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		if writeErr := ErrorResponse(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON"); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	fields, err := validation.Struct(req)
	if err != nil {
		if writeErr := RenderError(w, err, h.development); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}
	if len(fields) > 0 {
		if writeErr := WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "validation_failed",
			"fields":  fields,
		}); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	profile, err := h.svc.Login(r.Context(), req.BusinessEmail, req.Password)
	if err != nil {
		if writeErr := RenderError(w, err, h.development); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    profile,
		"message": "Vendor login successful",
	}); err != nil {
		h.logger.Error("Failed to encode login response", zap.Error(err))
	}
}

// ListVendors handles GET /api/users/vendors, a development aid listing
// vendor accounts without credentials.
func (h *AuthHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListVendors(r.Context())
	if err != nil {
		h.logger.Error("Vendor listing failed", zap.Error(err))
		if writeErr := RenderError(w, err, h.development); writeErr != nil {
			h.logger.Error("Failed to encode error response", zap.Error(writeErr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(summaries),
		"vendors": summaries,
	}); err != nil {
		h.logger.Error("Failed to encode vendor listing", zap.Error(err))
	}
}
