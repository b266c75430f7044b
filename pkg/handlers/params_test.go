package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorops/vos-engine/pkg/apperrors"
	"github.com/vendorops/vos-engine/pkg/models"
)

func TestParseReportRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/pending-orders?vendorId=7&page=3&limit=25&sortBy=Pending&sortOrder=ASC", nil)

	got, err := parseReportRequest(req)
	require.NoError(t, err)
	assert.Equal(t, models.ReportRequest{
		Page: 3, Limit: 25, SortBy: "Pending", SortOrder: models.SortAsc, VendorID: 7,
	}, got)
}

func TestParseReportRequest_VendorIDRequired(t *testing.T) {
	for _, query := range []string{"", "vendorId=", "vendorId=0", "vendorId=-1", "vendorId=abc"} {
		t.Run(query, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/pending-orders?"+query, nil)
			_, err := parseReportRequest(req)
			assert.ErrorIs(t, err, apperrors.ErrMissingVendorID)
		})
	}
}

func TestParseVendorID(t *testing.T) {
	req := httptest.NewRequest("GET", "/x?vendorId=42", nil)
	got, err := parseVendorID(req)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	req = httptest.NewRequest("GET", "/x", nil)
	_, err = parseVendorID(req)
	assert.ErrorIs(t, err, apperrors.ErrMissingVendorID)
}

func TestIntParam(t *testing.T) {
	assert.Equal(t, 10, intParam("", 10))
	assert.Equal(t, 10, intParam("x", 10))
	assert.Equal(t, 7, intParam("7", 10))
	assert.Equal(t, -2, intParam("-2", 10))
}
