package pricing

import (
	"testing"

	"agencysite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog(t *testing.T) {
	t.Parallel()

	t.Run("default catalog is valid", func(t *testing.T) {
		assert.NoError(t, ValidateCatalog(DefaultCatalog()))
	})

	t.Run("collects every problem", func(t *testing.T) {
		c := DefaultCatalog()
		c.WebsiteTypes = append(c.WebsiteTypes, models.PriceItem{Name: "Business Website", Price: 1})
		c.Technologies[0].Price = -1
		c.TimelineMultipliers[0].Multiplier = 0

		err := ValidateCatalog(c)
		require.Error(t, err)
		var verr *CatalogValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "website_types[4].name")
		assert.Contains(t, verr.Fields, "technologies[0].price")
		assert.Contains(t, verr.Fields, "timeline_multipliers[0].multiplier")
		assert.Len(t, verr.Fields, 3)
	})
}

func TestApplyUpdateKeepsUnsetFields(t *testing.T) {
	t.Parallel()
	c := DefaultCatalog()
	features := []models.PriceItem{{Name: "Chat", Price: 3000}}

	got := applyUpdate(c, models.PricingUpdate{Features: &features})

	assert.Equal(t, features, got.Features)
	assert.Equal(t, c.WebsiteTypes, got.WebsiteTypes)
	assert.Equal(t, c.Currency, got.Currency)
}
