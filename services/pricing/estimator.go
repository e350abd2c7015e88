package pricing

import (
	"agencysite/models"

	"github.com/shopspring/decimal"
)

var (
	lowerBand = decimal.RequireFromString("0.9")
	upperBand = decimal.RequireFromString("1.1")
)

// Calculate turns a selection into the presented price band.
//
// Names the catalog does not know (an admin may have removed them after the
// page loaded) contribute nothing; an unknown or missing timeline leaves the
// base price unscaled. The band is a flat +/-10% around base x multiplier,
// rounded half-up to whole currency units.
func Calculate(catalog models.PricingCatalog, sel models.Selection) models.Estimate {
	base := decimal.Zero

	if sel.WebsiteType != "" {
		if item, ok := findItem(catalog.WebsiteTypes, sel.WebsiteType); ok {
			base = base.Add(decimal.NewFromFloat(item.Price))
		}
	}
	for _, name := range unique(sel.Technologies) {
		if item, ok := findItem(catalog.Technologies, name); ok {
			base = base.Add(decimal.NewFromFloat(item.Price))
		}
	}
	for _, name := range unique(sel.Features) {
		if item, ok := findItem(catalog.Features, name); ok {
			base = base.Add(decimal.NewFromFloat(item.Price))
		}
	}

	multiplier := decimal.NewFromInt(1)
	if sel.Timeline != "" {
		if tm, ok := findTimeline(catalog.TimelineMultipliers, sel.Timeline); ok {
			multiplier = decimal.NewFromFloat(tm.Multiplier)
		}
	}

	final := base.Mul(multiplier)
	if final.IsNegative() {
		final = decimal.Zero
	}

	// decimal.Round rounds half away from zero, which is half-up for final >= 0.
	return models.Estimate{
		Min: final.Mul(lowerBand).Round(0).IntPart(),
		Max: final.Mul(upperBand).Round(0).IntPart(),
	}
}

func findItem(items []models.PriceItem, name string) (models.PriceItem, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return models.PriceItem{}, false
}

func findTimeline(items []models.TimelineMultiplier, label string) (models.TimelineMultiplier, bool) {
	for _, it := range items {
		if it.Range == label {
			return it, true
		}
	}
	return models.TimelineMultiplier{}, false
}

// unique drops repeated names; a selection is a set.
func unique(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
