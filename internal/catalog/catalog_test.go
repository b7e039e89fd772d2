package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAll tests the catalog shape
func TestAll(t *testing.T) {
	companies := All()
	assert.Len(t, companies, 30)

	for _, c := range companies {
		assert.NotEmpty(t, c.Company)
		assert.NotEmpty(t, c.Role)
		assert.NotEmpty(t, c.Skills)
		assert.NotEmpty(t, c.ApproxCompensation)
	}
}

// TestLookup_Found tests exact-name lookup
func TestLookup_Found(t *testing.T) {
	c, err := Lookup("Amazon India")
	require.NoError(t, err)
	assert.Equal(t, "SDE I", c.Role)
	assert.Contains(t, c.Skills, "Leadership Principles")
}

// TestLookup_ExactMatchOnly tests that lookup does not fuzzy-match
func TestLookup_ExactMatchOnly(t *testing.T) {
	for _, name := range []string{"amazon india", "Amazon", " Amazon India "} {
		_, err := Lookup(name)
		assert.Error(t, err, "expected miss for %q", name)
	}
}

// TestLookup_NotFound tests the typed miss
func TestLookup_NotFound(t *testing.T) {
	_, err := Lookup("Initech")
	require.Error(t, err)

	var notFound *CompanyNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Initech", notFound.Company)
}

// TestCompanyTargetJSON tests the wire field names
func TestCompanyTargetJSON(t *testing.T) {
	c, err := Lookup("Zerodha")
	require.NoError(t, err)

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"approx_CTC"`)
	assert.Contains(t, string(raw), `"company":"Zerodha"`)
}
