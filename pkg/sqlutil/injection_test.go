package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckParameterForInjection(t *testing.T) {
	t.Run("clean string", func(t *testing.T) {
		result := CheckParameterForInjection("vendorId", "12345")
		assert.Nil(t, result)
	})

	t.Run("injection attempt", func(t *testing.T) {
		result := CheckParameterForInjection("email", "' OR 1=1 --")
		require.NotNil(t, result)
		assert.True(t, result.IsSQLi)
		assert.Equal(t, "email", result.ParamName)
		assert.NotEmpty(t, result.Fingerprint)
	})

	t.Run("non-string skipped", func(t *testing.T) {
		assert.Nil(t, CheckParameterForInjection("vendorId", 7))
		assert.Nil(t, CheckParameterForInjection("active", true))
	})
}

func TestCheckAllParameters(t *testing.T) {
	params := map[string]any{
		"vendorId": 7,
		"email":    "vendor@example.com",
		"probe":    "'; DROP TABLE Vendor--",
	}

	results := CheckAllParameters(params)
	require.Len(t, results, 1)
	assert.Equal(t, "probe", results[0].ParamName)
}
