package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/models"
	"github.com/vendorops/vos-engine/pkg/reports"
	"github.com/vendorops/vos-engine/pkg/repositories"
)

// PendingOrdersResponse is the full pending-orders report payload: one page
// of rows plus derived pagination and the effective sort knobs. Unlike the
// draft report there is no success flag; callers key on the data field.
type PendingOrdersResponse struct {
	Data       []models.PendingOrderRow `json:"data"`
	Pagination models.Pagination        `json:"pagination"`
	Sorting    models.Sorting           `json:"sorting"`
}

// DraftOrdersResponse is the purchase-order-draft payload for one category.
type DraftOrdersResponse struct {
	Success  bool                   `json:"success"`
	Category models.DraftCategory   `json:"category"`
	Data     []models.DraftOrderRow `json:"data"`
	Count    int                    `json:"count"`
}

// ReportService assembles report responses from repository results.
type ReportService struct {
	repo   repositories.ReportRepository
	logger *zap.Logger
}

// NewReportService creates a report service.
func NewReportService(repo repositories.ReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

// PendingOrders runs the report and wraps it in the response envelope. The
// echoed sortBy is the effective one: an unknown column has already fallen
// back to the default by the time it reaches the statement, and the caller
// sees what was actually applied.
func (s *ReportService) PendingOrders(ctx context.Context, req models.ReportRequest) (*PendingOrdersResponse, error) {
	result, err := s.repo.PendingOrders(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Pending orders report served",
		zap.Int("vendorId", req.VendorID),
		zap.Int("page", req.Page),
		zap.Int("rows", len(result.Rows)),
		zap.Int("totalRecords", result.TotalRecords))

	return &PendingOrdersResponse{
		Data:       result.Rows,
		Pagination: models.NewPagination(req.Page, req.Limit, result.TotalRecords),
		Sorting: models.Sorting{
			SortBy:    reports.EffectiveSortBy(req.SortBy),
			SortOrder: string(req.SortOrder),
		},
	}, nil
}

// DraftOrders runs the draft report for one category. The category has been
// validated upstream; an unknown one still fails closed in the builder.
func (s *ReportService) DraftOrders(ctx context.Context, category models.DraftCategory, vendorID int) (*DraftOrdersResponse, error) {
	rows, err := s.repo.DraftOrders(ctx, category, vendorID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Purchase order draft report served",
		zap.Int("vendorId", vendorID),
		zap.String("category", string(category)),
		zap.Int("rows", len(rows)))

	return &DraftOrdersResponse{
		Success:  true,
		Category: category,
		Data:     rows,
		Count:    len(rows),
	}, nil
}
