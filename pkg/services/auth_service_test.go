package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vendorops/vos-engine/pkg/apperrors"
	"github.com/vendorops/vos-engine/pkg/models"
)

type mockVendorRepository struct {
	vendor    *models.Vendor
	err       error
	summaries []models.VendorSummary

	gotEmail string
}

func (m *mockVendorRepository) GetByEmail(_ context.Context, email string) (*models.Vendor, error) {
	m.gotEmail = email
	return m.vendor, m.err
}

func (m *mockVendorRepository) ListSummaries(_ context.Context) ([]models.VendorSummary, error) {
	return m.summaries, m.err
}

func activeVendor(t *testing.T, password string) *models.Vendor {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	name := "Daw Mya"
	return &models.Vendor{
		ID:            7,
		BusinessEmail: "vendor@example.com",
		CompanyName:   "Golden Thread Textiles",
		RefName:       &name,
		IsActive:      true,
		PasswordHash:  string(hash),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &mockVendorRepository{vendor: activeVendor(t, "s3cret")}
	svc := NewAuthService(repo, zap.NewNop())

	profile, err := svc.Login(context.Background(), "vendor@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, "Golden Thread Textiles", profile.VendorName)
	assert.Equal(t, "Daw Mya", *profile.ContactPerson)
}

func TestAuthService_Login_TrimsEmail(t *testing.T) {
	repo := &mockVendorRepository{vendor: activeVendor(t, "s3cret")}
	svc := NewAuthService(repo, zap.NewNop())

	_, err := svc.Login(context.Background(), "  vendor@example.com ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "vendor@example.com", repo.gotEmail)
}

func TestAuthService_Login_LegacyPlaintext(t *testing.T) {
	vendor := activeVendor(t, "unused")
	vendor.PasswordHash = "plain-old-password"
	repo := &mockVendorRepository{vendor: vendor}
	svc := NewAuthService(repo, zap.NewNop())

	_, err := svc.Login(context.Background(), "vendor@example.com", "plain-old-password")
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), "vendor@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UniformRejection(t *testing.T) {
	inactive := activeVendor(t, "s3cret")
	inactive.IsActive = false

	tests := []struct {
		name     string
		vendor   *models.Vendor
		password string
	}{
		{"unknown email", nil, "s3cret"},
		{"inactive account", inactive, "s3cret"},
		{"wrong password", activeVendor(t, "s3cret"), "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&mockVendorRepository{vendor: tt.vendor}, zap.NewNop())
			profile, err := svc.Login(context.Background(), "vendor@example.com", tt.password)

			// Every failure mode yields the same sentinel.
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
			assert.Nil(t, profile)
		})
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	wantErr := errors.New("connection reset")
	svc := NewAuthService(&mockVendorRepository{err: wantErr}, zap.NewNop())

	_, err := svc.Login(context.Background(), "vendor@example.com", "s3cret")
	assert.ErrorIs(t, err, wantErr)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_ListVendors(t *testing.T) {
	repo := &mockVendorRepository{summaries: []models.VendorSummary{
		{BusinessEmail: "a@example.com", CompanyName: "A", IsActive: true},
	}}
	svc := NewAuthService(repo, zap.NewNop())

	got, err := svc.ListVendors(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestVerifyPassword_BcryptDetection(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, verifyPassword(string(hash), "pw"))
	assert.False(t, verifyPassword(string(hash), "other"))

	// A value that merely resembles a hash prefix is still compared as one.
	assert.False(t, verifyPassword("$2b$notreallyahash", "$2b$notreallyahash"))
}
