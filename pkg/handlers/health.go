package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/config"
	"github.com/vendorops/vos-engine/pkg/database"
)

// HealthResponse contains service status and version information.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Service     string `json:"service"`
	GoVersion   string `json:"go_version"`
	Hostname    string `json:"hostname"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// HealthHandler handles liveness, connectivity probes and the root banner.
type HealthHandler struct {
	cfg    *config.Config
	db     *database.Manager
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config, db *database.Manager, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db, logger: logger}
}

// RegisterRoutes registers the handler's routes on the given mux. The bare
// "/" pattern doubles as the catch-all, so unmatched paths land in Root and
// come back as JSON 404s rather than the default text page.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /api/db-test", h.DBTest)
	mux.HandleFunc("/", h.Root)
}

// Health handles GET /health requests. It reports process liveness only and
// never touches the database; a down store must not fail the probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()

	response := HealthResponse{
		Status:      "ok",
		Version:     h.cfg.Version,
		Service:     "vos-engine",
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		Environment: h.cfg.Env,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode health response", zap.Error(err))
	}
}

// DBTest handles GET /api/db-test requests: a live round trip to SQL Server
// reported as a boolean, for diagnosing connectivity separately from
// liveness.
func (h *HealthHandler) DBTest(w http.ResponseWriter, r *http.Request) {
	connected := h.db.TestConnection(r.Context())

	status := http.StatusOK
	message := "Database connection successful"
	if !connected {
		status = http.StatusServiceUnavailable
		message = "Database connection failed"
	}

	if err := WriteJSON(w, status, map[string]any{
		"success": connected,
		"message": message,
	}); err != nil {
		h.logger.Error("Failed to encode db-test response", zap.Error(err))
	}
}

// Root handles GET / with a service banner and everything unmatched with a
// JSON 404.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFound(w, r)
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]any{
		"service": "vos-engine",
		"status":  "running",
		"version": h.cfg.Version,
	}); err != nil {
		h.logger.Error("Failed to encode banner response", zap.Error(err))
	}
}
