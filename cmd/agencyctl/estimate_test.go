package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"agencysite/models"
	"agencysite/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEstimateTable(t *testing.T) {
	var buf bytes.Buffer
	sel := models.Selection{WebsiteType: "Business Website", Technologies: []string{"React"}}

	require.NoError(t, writeEstimate(&buf, pricing.DefaultCatalog(), sel, "table"))
	// 40000 +/- 10%
	assert.Contains(t, buf.String(), "₹36,000 - ₹44,000")
}

func TestWriteEstimateEmptySelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeEstimate(&buf, pricing.DefaultCatalog(), models.Selection{}, "table"))
	assert.Contains(t, buf.String(), "Select a website type")
}

func TestLoadCatalogFromFile(t *testing.T) {
	catalog := models.PricingCatalog{
		WebsiteTypes:        []models.PriceItem{{Name: "Business", Price: 5000}},
		Technologies:        []models.PriceItem{{Name: "React", Price: 1000}},
		Features:            []models.PriceItem{{Name: "SEO", Price: 500}},
		TimelineMultipliers: []models.TimelineMultiplier{{Range: "7-15 days", Multiplier: 1.2}},
		Currency:            "INR",
		CurrencySymbol:      "₹",
	}
	raw, err := json.Marshal(catalog)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	loaded, err := loadCatalog(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	sel := models.Selection{WebsiteType: "Business", Technologies: []string{"React"}, Features: []string{"SEO"}, Timeline: "7-15 days"}
	require.NoError(t, writeEstimate(&buf, loaded, sel, "json"))

	var out models.EstimateResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, int64(7020), out.Min)
	assert.Equal(t, int64(8580), out.Max)
	assert.True(t, out.Complete)
}

func TestGrouped(t *testing.T) {
	assert.Equal(t, "0", grouped(0))
	assert.Equal(t, "999", grouped(999))
	assert.Equal(t, "1,000", grouped(1000))
	assert.Equal(t, "1,234,567", grouped(1234567))
}
