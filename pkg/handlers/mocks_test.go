package handlers

import (
	"context"

	"github.com/vendorops/vos-engine/pkg/models"
	"github.com/vendorops/vos-engine/pkg/services"
)

type mockReportService struct {
	pendingResp *services.PendingOrdersResponse
	pendingErr  error
	draftResp   *services.DraftOrdersResponse
	draftErr    error

	gotRequest  models.ReportRequest
	gotCategory models.DraftCategory
	gotVendorID int
	called      bool
}

func (m *mockReportService) PendingOrders(_ context.Context, req models.ReportRequest) (*services.PendingOrdersResponse, error) {
	m.called = true
	m.gotRequest = req
	return m.pendingResp, m.pendingErr
}

func (m *mockReportService) DraftOrders(_ context.Context, category models.DraftCategory, vendorID int) (*services.DraftOrdersResponse, error) {
	m.called = true
	m.gotCategory = category
	m.gotVendorID = vendorID
	return m.draftResp, m.draftErr
}

type mockAuthService struct {
	profile   *models.VendorProfile
	loginErr  error
	summaries []models.VendorSummary
	listErr   error

	gotEmail    string
	gotPassword string
	called      bool
}

func (m *mockAuthService) Login(_ context.Context, email, password string) (*models.VendorProfile, error) {
	m.called = true
	m.gotEmail = email
	m.gotPassword = password
	return m.profile, m.loginErr
}

func (m *mockAuthService) ListVendors(_ context.Context) ([]models.VendorSummary, error) {
	return m.summaries, m.listErr
}
