package pricing

import "agencysite/models"

// DefaultCatalog is served (and stored) the first time the catalog is read
// before an admin has saved one.
func DefaultCatalog() models.PricingCatalog {
	return models.PricingCatalog{
		ID: models.PricingConfigID,
		WebsiteTypes: []models.PriceItem{
			{Name: "Business Website", Price: 25000},
			{Name: "E-commerce Website", Price: 50000},
			{Name: "Portfolio Website", Price: 15000},
			{Name: "SaaS / Web App", Price: 100000},
		},
		Technologies: []models.PriceItem{
			{Name: "HTML/CSS", Price: 0},
			{Name: "React", Price: 15000},
			{Name: "Next.js", Price: 20000},
			{Name: "Node.js", Price: 12000},
			{Name: "FastAPI", Price: 12000},
			{Name: "MongoDB", Price: 8000},
			{Name: "MySQL", Price: 8000},
		},
		Features: []models.PriceItem{
			{Name: "Admin Panel", Price: 15000},
			{Name: "Blog System", Price: 10000},
			{Name: "Authentication", Price: 8000},
			{Name: "Payment Gateway", Price: 12000},
			{Name: "SEO Optimization", Price: 5000},
		},
		TimelineMultipliers: []models.TimelineMultiplier{
			{Range: "7-15 days", Multiplier: 1.5},
			{Range: "15-30 days", Multiplier: 1.0},
			{Range: "30-60 days", Multiplier: 0.8},
		},
		Currency:       "INR",
		CurrencySymbol: "₹",
	}
}
