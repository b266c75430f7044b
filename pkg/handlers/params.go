package handlers

import (
	"net/http"
	"strconv"

	"github.com/vendorops/vos-engine/pkg/apperrors"
	"github.com/vendorops/vos-engine/pkg/models"
)

// parseReportRequest reads the pagination, sorting and tenant knobs from the
// query string. Out-of-range page and limit values clamp to defaults rather
// than erroring; a missing or non-positive vendorId is terminal and is the
// only error this parse can produce.
func parseReportRequest(r *http.Request) (models.ReportRequest, error) {
	q := r.URL.Query()

	req := models.ReportRequest{
		Page:      intParam(q.Get("page"), models.DefaultPage),
		Limit:     intParam(q.Get("limit"), models.DefaultLimit),
		SortBy:    q.Get("sortBy"),
		SortOrder: models.ParseSortOrder(q.Get("sortOrder")),
	}
	if req.Page < 1 {
		req.Page = models.DefaultPage
	}
	if req.Limit < 1 || req.Limit > models.MaxLimit {
		req.Limit = models.DefaultLimit
	}

	vendorID, err := strconv.Atoi(q.Get("vendorId"))
	if err != nil || vendorID <= 0 {
		return models.ReportRequest{}, apperrors.ErrMissingVendorID
	}
	req.VendorID = vendorID

	return req, nil
}

// parseVendorID reads the mandatory tenant filter on its own, for endpoints
// without pagination.
func parseVendorID(r *http.Request) (int, error) {
	vendorID, err := strconv.Atoi(r.URL.Query().Get("vendorId"))
	if err != nil || vendorID <= 0 {
		return 0, apperrors.ErrMissingVendorID
	}
	return vendorID, nil
}

// intParam parses a decimal query value, falling back on absence or garbage.
func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
