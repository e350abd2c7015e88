package pricing

import (
	"fmt"
	"strings"

	"agencysite/models"
)

// ValidateCatalog checks the catalog invariants: non-empty names unique per
// list, prices >= 0, multipliers > 0. It returns nil or a *CatalogValidationError.
func ValidateCatalog(c models.PricingCatalog) error {
	fields := map[string]string{}

	checkItems := func(list string, items []models.PriceItem) {
		seen := map[string]bool{}
		for i, it := range items {
			key := fmt.Sprintf("%s[%d]", list, i)
			name := strings.TrimSpace(it.Name)
			switch {
			case name == "":
				fields[key+".name"] = "name is required"
			case seen[name]:
				fields[key+".name"] = fmt.Sprintf("duplicate name %q", name)
			}
			seen[name] = true
			if it.Price < 0 {
				fields[key+".price"] = "price must not be negative"
			}
		}
	}
	checkItems("website_types", c.WebsiteTypes)
	checkItems("technologies", c.Technologies)
	checkItems("features", c.Features)

	seen := map[string]bool{}
	for i, tm := range c.TimelineMultipliers {
		key := fmt.Sprintf("timeline_multipliers[%d]", i)
		label := strings.TrimSpace(tm.Range)
		switch {
		case label == "":
			fields[key+".range"] = "range is required"
		case seen[label]:
			fields[key+".range"] = fmt.Sprintf("duplicate range %q", label)
		}
		seen[label] = true
		if tm.Multiplier <= 0 {
			fields[key+".multiplier"] = "multiplier must be greater than zero"
		}
	}

	if strings.TrimSpace(c.Currency) == "" {
		fields["currency"] = "currency is required"
	}

	if len(fields) > 0 {
		return &CatalogValidationError{Fields: fields}
	}
	return nil
}

// applyUpdate overlays the provided fields of the patch on the catalog.
func applyUpdate(c models.PricingCatalog, p models.PricingUpdate) models.PricingCatalog {
	if p.WebsiteTypes != nil {
		c.WebsiteTypes = *p.WebsiteTypes
	}
	if p.Technologies != nil {
		c.Technologies = *p.Technologies
	}
	if p.Features != nil {
		c.Features = *p.Features
	}
	if p.TimelineMultipliers != nil {
		c.TimelineMultipliers = *p.TimelineMultipliers
	}
	if p.Currency != nil {
		c.Currency = *p.Currency
	}
	if p.CurrencySymbol != nil {
		c.CurrencySymbol = *p.CurrencySymbol
	}
	return c
}
