package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/database"
	"github.com/vendorops/vos-engine/pkg/models"
	"github.com/vendorops/vos-engine/pkg/reports"
)

// ReportRepository defines data access for the two report endpoints.
type ReportRepository interface {
	// PendingOrders returns one page of pending-order rows plus the total
	// record count across both union branches.
	PendingOrders(ctx context.Context, req models.ReportRequest) (*models.PendingOrdersResult, error)
	// DraftOrders returns all draft lines for one product category.
	DraftOrders(ctx context.Context, category models.DraftCategory, vendorID int) ([]models.DraftOrderRow, error)
}

// reportRepository implements ReportRepository against SQL Server.
type reportRepository struct {
	db     *database.Manager
	logger *zap.Logger
}

// NewReportRepository creates a report repository on the given connection
// manager.
func NewReportRepository(db *database.Manager, logger *zap.Logger) ReportRepository {
	return &reportRepository{db: db, logger: logger}
}

// PendingOrders issues the page statement and the mirrored count statement
// as two concurrent round trips; the driver has no combined call. The
// result is assembled only after both have resolved, and the data error
// wins when both fail.
func (r *reportRepository) PendingOrders(ctx context.Context, req models.ReportRequest) (*models.PendingOrdersResult, error) {
	dataStmt, dataParams, err := reports.BuildPendingOrdersQuery(req)
	if err != nil {
		return nil, err
	}
	countStmt, countParams, err := reports.BuildPendingOrdersCountQuery(req.VendorID)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		rows     []models.PendingOrderRow
		total    int
		dataErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, dataErr = r.queryPendingRows(ctx, dataStmt, dataParams)
	}()
	go func() {
		defer wg.Done()
		total, countErr = r.queryTotal(ctx, countStmt, countParams)
	}()
	wg.Wait()

	if dataErr != nil {
		return nil, dataErr
	}
	if countErr != nil {
		return nil, countErr
	}

	return &models.PendingOrdersResult{Rows: rows, TotalRecords: total}, nil
}

func (r *reportRepository) queryPendingRows(ctx context.Context, statement string, params map[string]any) ([]models.PendingOrderRow, error) {
	sqlRows, err := r.db.Query(ctx, statement, params)
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	result := make([]models.PendingOrderRow, 0)
	for sqlRows.Next() {
		row, err := scanPendingRow(sqlRows)
		if err != nil {
			return nil, fmt.Errorf("scan pending order row: %w", err)
		}
		result = append(result, row)
	}
	if err := sqlRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending order rows: %w", err)
	}

	return result, nil
}

// scanPendingRow scans one row in the projection's column order and shapes
// it: dates to YYYY-MM-DD or null, quantities to 0-defaulted numbers,
// ClosingDays kept nullable.
func scanPendingRow(rows *sql.Rows) (models.PendingOrderRow, error) {
	var (
		category, orderNo, itemCode, description, vendor  sql.NullString
		unit, prStatus, isCost, picture, vendorPicture    sql.NullString
		imagePath, oldCode, factoryCode                   sql.NullString
		deliveryDate, finalDeliveryDate                   sql.NullString
		orderDate, dDate, lastReceiveDate                 sql.NullTime
		orderQty, receivedQty, qcQty, rejectQty           sql.NullFloat64
		pendingQty, stockQty, price, lastReceiveQty       sql.NullFloat64
		closingDays, autoClosedPenaltyQty                 sql.NullFloat64
	)

	if err := rows.Scan(
		&category, &imagePath, &orderNo, &orderDate, &itemCode,
		&oldCode, &description, &factoryCode, &vendor, &orderQty,
		&receivedQty, &qcQty, &rejectQty, &pendingQty, &unit,
		&stockQty, &deliveryDate, &dDate, &finalDeliveryDate, &closingDays,
		&prStatus, &isCost, &picture, &vendorPicture, &price,
		&lastReceiveQty, &lastReceiveDate, &autoClosedPenaltyQty,
	); err != nil {
		return models.PendingOrderRow{}, err
	}

	return models.PendingOrderRow{
		Category:             reports.TextOrEmpty(category),
		ImagePath:            reports.TextOrNil(imagePath),
		OrderNo:              reports.TextOrEmpty(orderNo),
		OrderDate:            reports.NormalizeDate(orderDate),
		ItemCode:             reports.TextOrEmpty(itemCode),
		OldCode:              reports.TextOrNil(oldCode),
		Description:          reports.TextOrEmpty(description),
		FactoryCode:          reports.TextOrNil(factoryCode),
		Vendor:               reports.TextOrEmpty(vendor),
		OrderQty:             reports.CoerceNumeric(orderQty),
		ReceivedQty:          reports.CoerceNumeric(receivedQty),
		QCQty:                reports.CoerceNumeric(qcQty),
		RejectQty:            reports.CoerceNumeric(rejectQty),
		PendingQty:           reports.CoerceNumeric(pendingQty),
		Unit:                 reports.TextOrEmpty(unit),
		StockQty:             reports.CoerceNumeric(stockQty),
		DeliveryDate:         reports.TextOrNil(deliveryDate),
		DDate:                reports.NormalizeDate(dDate),
		FinalDeliveryDate:    reports.TextOrNil(finalDeliveryDate),
		ClosingDays:          reports.NullableNumeric(closingDays),
		PRStatus:             reports.TextOrEmpty(prStatus),
		IsCost:               reports.TextOrEmpty(isCost),
		Picture:              reports.TextOrEmpty(picture),
		VendorPicture:        reports.TextOrEmpty(vendorPicture),
		Price:                reports.CoerceNumeric(price),
		LastReceiveQty:       reports.CoerceNumeric(lastReceiveQty),
		LastReceiveDate:      reports.NormalizeDate(lastReceiveDate),
		AutoClosedPenaltyQty: reports.CoerceNumeric(autoClosedPenaltyQty),
	}, nil
}

func (r *reportRepository) queryTotal(ctx context.Context, statement string, params map[string]any) (int, error) {
	sqlRows, err := r.db.Query(ctx, statement, params)
	if err != nil {
		return 0, err
	}
	defer sqlRows.Close()

	var total int
	if sqlRows.Next() {
		if err := sqlRows.Scan(&total); err != nil {
			return 0, fmt.Errorf("scan total: %w", err)
		}
	}
	if err := sqlRows.Err(); err != nil {
		return 0, fmt.Errorf("iterate count rows: %w", err)
	}

	return total, nil
}

// DraftOrders dispatches on the category enum, executes the matching
// statement and shapes the rows. The invalid-category error surfaces from
// the builder before any database call.
func (r *reportRepository) DraftOrders(ctx context.Context, category models.DraftCategory, vendorID int) ([]models.DraftOrderRow, error) {
	statement, params, err := reports.BuildDraftQuery(category, vendorID)
	if err != nil {
		return nil, err
	}

	sqlRows, err := r.db.Query(ctx, statement, params)
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	withExtras := reports.HasFinishProductExtras(category)
	result := make([]models.DraftOrderRow, 0)
	for sqlRows.Next() {
		row, err := scanDraftRow(sqlRows, withExtras)
		if err != nil {
			return nil, fmt.Errorf("scan draft order row: %w", err)
		}
		result = append(result, row)
	}
	if err := sqlRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draft order rows: %w", err)
	}

	return result, nil
}

func scanDraftRow(rows *sql.Rows, withExtras bool) (models.DraftOrderRow, error) {
	var (
		vendor, orderNo, itemCode, oldCode, description sql.NullString
		category, picture, imagePath                    sql.NullString
		orderDate                                       sql.NullTime
		reserveQty                                      sql.NullFloat64
	)

	dest := []any{&vendor, &orderNo, &orderDate, &itemCode, &oldCode, &description, &reserveQty}
	if withExtras {
		dest = append(dest, &category, &picture, &imagePath)
	}
	if err := rows.Scan(dest...); err != nil {
		return models.DraftOrderRow{}, err
	}

	row := models.DraftOrderRow{
		Vendor:      reports.TextOrEmpty(vendor),
		OrderNo:     reports.TextOrEmpty(orderNo),
		OrderDate:   reports.NormalizeDate(orderDate),
		ItemCode:    reports.TextOrEmpty(itemCode),
		OldCode:     reports.TextOrNil(oldCode),
		Description: reports.TextOrEmpty(description),
		ReserveQty:  reports.CoerceNumeric(reserveQty),
	}
	if withExtras {
		row.Category = reports.TextOrNil(category)
		row.Picture = reports.TextOrNil(picture)
		row.ImagePath = reports.TextOrNil(imagePath)
	}
	return row, nil
}
