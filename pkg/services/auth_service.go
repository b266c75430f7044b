package services

import (
	"context"
	"crypto/subtle"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vendorops/vos-engine/pkg/apperrors"
	"github.com/vendorops/vos-engine/pkg/models"
	"github.com/vendorops/vos-engine/pkg/repositories"
)

// AuthService verifies vendor credentials. It deliberately collapses every
// failure mode (unknown email, inactive account, wrong password) into the
// same error so responses cannot be used to enumerate accounts.
type AuthService struct {
	vendors repositories.VendorRepository
	logger  *zap.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(vendors repositories.VendorRepository, logger *zap.Logger) *AuthService {
	return &AuthService{vendors: vendors, logger: logger}
}

// Login checks the email/password pair and returns the vendor's profile on
// success. Migrated accounts carry bcrypt hashes; accounts that predate the
// migration still hold plaintext and are compared in constant time.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.VendorProfile, error) {
	vendor, err := s.vendors.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		s.logger.Info("Login rejected", zap.String("reason", "unknown email"))
		return nil, apperrors.ErrInvalidCredentials
	}
	if !vendor.IsActive {
		s.logger.Info("Login rejected",
			zap.Int("vendorId", vendor.ID),
			zap.String("reason", "inactive account"))
		return nil, apperrors.ErrInvalidCredentials
	}

	if !verifyPassword(vendor.PasswordHash, password) {
		s.logger.Info("Login rejected",
			zap.Int("vendorId", vendor.ID),
			zap.String("reason", "password mismatch"))
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info("Vendor logged in", zap.Int("vendorId", vendor.ID))
	profile := vendor.Profile()
	return &profile, nil
}

// verifyPassword accepts either a bcrypt hash or a legacy plaintext value in
// the stored column. The plaintext path uses a constant-time compare.
func verifyPassword(stored, supplied string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// ListVendors returns the debug listing of all vendor accounts.
func (s *AuthService) ListVendors(ctx context.Context) ([]models.VendorSummary, error) {
	return s.vendors.ListSummaries(ctx)
}
