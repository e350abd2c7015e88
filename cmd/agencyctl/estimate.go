package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"agencysite/models"
	"agencysite/services/pricing"

	"github.com/shopspring/decimal"
)

func loadCatalog(path string) (models.PricingCatalog, error) {
	if path == "" {
		return pricing.DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.PricingCatalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	var catalog models.PricingCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return models.PricingCatalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := pricing.ValidateCatalog(catalog); err != nil {
		return models.PricingCatalog{}, err
	}
	return catalog, nil
}

func writeEstimate(w io.Writer, catalog models.PricingCatalog, sel models.Selection, format string) error {
	est := pricing.Calculate(catalog, sel)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(models.EstimateResponse{
			Estimate:       est,
			Currency:       catalog.Currency,
			CurrencySymbol: catalog.CurrencySymbol,
			Complete:       sel.IsComplete(),
		})
	case "table", "":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if sel.IsEmpty() {
		_, err := fmt.Fprintln(w, "Select a website type, technologies, features and a timeline to see an estimate.")
		return err
	}

	fmt.Fprintf(w, "%-14s %s\n", "Website type:", orDash(sel.WebsiteType))
	fmt.Fprintf(w, "%-14s %s\n", "Technologies:", orDash(strings.Join(sel.Technologies, ", ")))
	fmt.Fprintf(w, "%-14s %s\n", "Features:", orDash(strings.Join(sel.Features, ", ")))
	fmt.Fprintf(w, "%-14s %s\n", "Timeline:", orDash(sel.Timeline))
	_, err := fmt.Fprintf(w, "%-14s %s%s - %s%s\n", "Estimate:",
		catalog.CurrencySymbol, grouped(est.Min), catalog.CurrencySymbol, grouped(est.Max))
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// grouped formats whole currency units with thousands separators.
func grouped(n int64) string {
	s := decimal.NewFromInt(n).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
