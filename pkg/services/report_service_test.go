package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/models"
)

type mockReportRepository struct {
	pendingResult *models.PendingOrdersResult
	pendingErr    error
	draftRows     []models.DraftOrderRow
	draftErr      error

	gotRequest  models.ReportRequest
	gotCategory models.DraftCategory
	gotVendorID int
}

func (m *mockReportRepository) PendingOrders(_ context.Context, req models.ReportRequest) (*models.PendingOrdersResult, error) {
	m.gotRequest = req
	return m.pendingResult, m.pendingErr
}

func (m *mockReportRepository) DraftOrders(_ context.Context, category models.DraftCategory, vendorID int) ([]models.DraftOrderRow, error) {
	m.gotCategory = category
	m.gotVendorID = vendorID
	return m.draftRows, m.draftErr
}

func TestReportService_PendingOrders_Envelope(t *testing.T) {
	rows := make([]models.PendingOrderRow, 5)
	repo := &mockReportRepository{
		pendingResult: &models.PendingOrdersResult{Rows: rows, TotalRecords: 15},
	}
	svc := NewReportService(repo, zap.NewNop())

	resp, err := svc.PendingOrders(context.Background(), models.ReportRequest{
		Page:      2,
		Limit:     10,
		SortBy:    "Pending",
		SortOrder: models.SortAsc,
		VendorID:  7,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Data, 5)
	assert.Equal(t, models.Pagination{
		CurrentPage:  2,
		TotalPages:   2,
		TotalRecords: 15,
		Limit:        10,
		HasNextPage:  false,
		HasPrevPage:  true,
	}, resp.Pagination)
	assert.Equal(t, models.Sorting{SortBy: "Pending", SortOrder: "ASC"}, resp.Sorting)
}

func TestReportService_PendingOrders_EchoesEffectiveSort(t *testing.T) {
	repo := &mockReportRepository{
		pendingResult: &models.PendingOrdersResult{Rows: nil, TotalRecords: 0},
	}
	svc := NewReportService(repo, zap.NewNop())

	resp, err := svc.PendingOrders(context.Background(), models.ReportRequest{
		Page:      1,
		Limit:     10,
		SortBy:    "NotAColumn",
		SortOrder: models.SortDesc,
		VendorID:  7,
	})
	require.NoError(t, err)

	// The caller sees the applied sort, not the rejected one.
	assert.Equal(t, "OrderNo", resp.Sorting.SortBy)
	assert.Equal(t, "DESC", resp.Sorting.SortOrder)
	assert.Equal(t, models.Pagination{
		CurrentPage: 1, TotalPages: 0, TotalRecords: 0, Limit: 10,
	}, resp.Pagination)
}

func TestReportService_PendingOrders_RepositoryError(t *testing.T) {
	wantErr := errors.New("boom")
	repo := &mockReportRepository{pendingErr: wantErr}
	svc := NewReportService(repo, zap.NewNop())

	_, err := svc.PendingOrders(context.Background(), models.ReportRequest{Page: 1, Limit: 10, VendorID: 7})
	assert.ErrorIs(t, err, wantErr)
}

func TestReportService_DraftOrders(t *testing.T) {
	repo := &mockReportRepository{
		draftRows: []models.DraftOrderRow{{OrderNo: "PO-9"}, {OrderNo: "PO-8"}},
	}
	svc := NewReportService(repo, zap.NewNop())

	resp, err := svc.DraftOrders(context.Background(), models.CategoryPreps, 7)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, models.CategoryPreps, resp.Category)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, models.CategoryPreps, repo.gotCategory)
	assert.Equal(t, 7, repo.gotVendorID)
}

func TestReportService_DraftOrders_EmptyResult(t *testing.T) {
	repo := &mockReportRepository{draftRows: []models.DraftOrderRow{}}
	svc := NewReportService(repo, zap.NewNop())

	resp, err := svc.DraftOrders(context.Background(), models.CategoryMaterial, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Data)
}
