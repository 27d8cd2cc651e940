package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"bar", "culture", "food", "romantic", "investigate"} {
		c, err := ParseCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, c.String())
	}

	_, err := ParseCategory("teleport")
	assert.Error(t, err)
}

func TestCategory_SearchQuery(t *testing.T) {
	cases := map[Category]string{
		CategoryBar:         "Bar",
		CategoryCulture:     "Theater",
		CategoryFood:        "Grocery",
		CategoryRomantic:    "Cinema",
		CategoryInvestigate: "Landmark",
	}
	for category, want := range cases {
		assert.Equal(t, want, category.SearchQuery())
	}

	// Unmapped categories yield no search term.
	assert.Empty(t, Category("teleport").SearchQuery())
}
