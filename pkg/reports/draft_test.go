package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorops/vos-engine/pkg/apperrors"
	"github.com/vendorops/vos-engine/pkg/models"
	"github.com/vendorops/vos-engine/pkg/sqlutil"
)

func TestBuildDraftQuery_CategoryDispatch(t *testing.T) {
	tests := []struct {
		category     models.DraftCategory
		wantTable    string
		wantItemCode string
	}{
		{models.CategoryMaterial, "MaterialOrderMaster", "(IM.ItemCode + '-' + C.Code + '-' + G.Code)"},
		{models.CategoryPreps, "PrepOrderMaster", "(IM.ItemCode + '-' + F.Code)"},
		{models.CategoryAccessories, "AccessoryOrderMaster", "(IM.ItemCode + '-' + C.Code)"},
		{models.CategoryPackaging, "PackagingOrderMaster", "(IM.ItemCode + '-' + C.Code)"},
		{models.CategoryFinishProduct, "FinishProductOrderMaster", "(IM.ItemCode + '-' + M.M_Code + '-' + C.Code + '-' + F.Code)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			statement, params, err := BuildDraftQuery(tt.category, 7)
			require.NoError(t, err)

			assert.Contains(t, statement, tt.wantTable)
			assert.Contains(t, statement, tt.wantItemCode+" AS ItemCode")
			assert.Contains(t, statement, "OM.OrderStat = 'Draft'")
			assert.Contains(t, statement, "OM.FK_VendorID = @vendorId")
			assert.True(t, strings.HasSuffix(statement, "ORDER BY OM.OrderNo DESC"))

			assert.Equal(t, map[string]any{"vendorId": 7}, params)
			assert.NoError(t, sqlutil.ValidateParameters(statement, params))
		})
	}
}

func TestBuildDraftQuery_FinishProductExtras(t *testing.T) {
	statement, _, err := BuildDraftQuery(models.CategoryFinishProduct, 7)
	require.NoError(t, err)
	assert.Contains(t, statement, "C2.Description AS Category")
	assert.Contains(t, statement, "IM.Picture")
	assert.Contains(t, statement, "IT.ImageFolderPathOnline AS Imagepath")

	for _, c := range []models.DraftCategory{models.CategoryMaterial, models.CategoryPreps, models.CategoryAccessories, models.CategoryPackaging} {
		statement, _, err := BuildDraftQuery(c, 7)
		require.NoError(t, err)
		assert.NotContains(t, statement, "Imagepath")
		assert.False(t, HasFinishProductExtras(c))
	}
	assert.True(t, HasFinishProductExtras(models.CategoryFinishProduct))
}

func TestBuildDraftQuery_InvalidCategory(t *testing.T) {
	statement, params, err := BuildDraftQuery(models.DraftCategory("Widgets"), 7)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
	assert.Empty(t, statement)
	assert.Nil(t, params)
}

func TestBuildDraftQuery_MissingVendorID(t *testing.T) {
	_, _, err := BuildDraftQuery(models.CategoryMaterial, 0)
	assert.ErrorIs(t, err, apperrors.ErrMissingVendorID)
}
