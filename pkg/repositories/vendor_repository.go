package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/database"
	"github.com/vendorops/vos-engine/pkg/models"
)

// VendorRepository defines data access for vendor accounts.
type VendorRepository interface {
	// GetByEmail returns the vendor with the given business email, or
	// (nil, nil) when no such vendor exists.
	GetByEmail(ctx context.Context, email string) (*models.Vendor, error)
	// ListSummaries returns every vendor's email, company name and active
	// flag.
	ListSummaries(ctx context.Context) ([]models.VendorSummary, error)
}

type vendorRepository struct {
	db     *database.Manager
	logger *zap.Logger
}

// NewVendorRepository creates a vendor repository on the given connection
// manager.
func NewVendorRepository(db *database.Manager, logger *zap.Logger) VendorRepository {
	return &vendorRepository{db: db, logger: logger}
}

const vendorByEmailQuery = `SELECT ID, BusinessEmail, CompanyName, Ref_Name, BusinessPhone, Address, Since, Is_Active, Password
FROM Vendor
WHERE BusinessEmail = @BusinessEmail`

func (r *vendorRepository) GetByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	rows, err := r.db.Query(ctx, vendorByEmailQuery, map[string]any{"BusinessEmail": email})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate vendor rows: %w", err)
		}
		return nil, nil
	}

	var (
		v        models.Vendor
		refName  sql.NullString
		phone    sql.NullString
		address  sql.NullString
		since    sql.NullTime
		password sql.NullString
	)
	if err := rows.Scan(&v.ID, &v.BusinessEmail, &v.CompanyName, &refName, &phone, &address, &since, &v.IsActive, &password); err != nil {
		return nil, fmt.Errorf("scan vendor: %w", err)
	}

	if refName.Valid {
		v.RefName = &refName.String
	}
	if phone.Valid {
		v.BusinessPhone = &phone.String
	}
	if address.Valid {
		v.Address = &address.String
	}
	if since.Valid {
		t := since.Time
		v.Since = &t
	}
	v.PasswordHash = password.String

	return &v, nil
}

const vendorSummariesQuery = `SELECT BusinessEmail, CompanyName, Is_Active
FROM Vendor
ORDER BY CompanyName`

func (r *vendorRepository) ListSummaries(ctx context.Context) ([]models.VendorSummary, error) {
	rows, err := r.db.Query(ctx, vendorSummariesQuery, nil)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]models.VendorSummary, 0)
	for rows.Next() {
		var s models.VendorSummary
		if err := rows.Scan(&s.BusinessEmail, &s.CompanyName, &s.IsActive); err != nil {
			return nil, fmt.Errorf("scan vendor summary: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendor summaries: %w", err)
	}

	return result, nil
}
