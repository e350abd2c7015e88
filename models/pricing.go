package models

import "time"

// PricingConfigID is the fixed document id of the single pricing catalog.
const PricingConfigID = "pricing_config"

// PriceItem is one purchasable line item (website type, technology or feature).
type PriceItem struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// TimelineMultiplier scales the base price for a delivery window, e.g. "7-15 days" x1.5.
type TimelineMultiplier struct {
	Range      string  `bson:"range" json:"range"`
	Multiplier float64 `bson:"multiplier" json:"multiplier"`
}

// PricingCatalog is the admin-managed price list the estimator reads from.
type PricingCatalog struct {
	ID                  string               `bson:"id" json:"id"`
	WebsiteTypes        []PriceItem          `bson:"website_types" json:"website_types"`
	Technologies        []PriceItem          `bson:"technologies" json:"technologies"`
	Features            []PriceItem          `bson:"features" json:"features"`
	TimelineMultipliers []TimelineMultiplier `bson:"timeline_multipliers" json:"timeline_multipliers"`
	Currency            string               `bson:"currency" json:"currency"`
	CurrencySymbol      string               `bson:"currency_symbol" json:"currency_symbol"`
	UpdatedAt           time.Time            `bson:"updated_at" json:"updated_at"`
}

// PricingUpdate is a partial catalog update; nil fields keep their stored value.
type PricingUpdate struct {
	WebsiteTypes        *[]PriceItem          `json:"website_types,omitempty"`
	Technologies        *[]PriceItem          `json:"technologies,omitempty"`
	Features            *[]PriceItem          `json:"features,omitempty"`
	TimelineMultipliers *[]TimelineMultiplier `json:"timeline_multipliers,omitempty"`
	Currency            *string               `json:"currency,omitempty"`
	CurrencySymbol      *string               `json:"currency_symbol,omitempty"`
}

// Selection is what a visitor has picked in the calculator.
type Selection struct {
	WebsiteType  string   `json:"website_type,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Features     []string `json:"features,omitempty"`
	Timeline     string   `json:"timeline,omitempty"`
}

// IsEmpty reports whether nothing at all was selected.
func (s Selection) IsEmpty() bool {
	return s.WebsiteType == "" && len(s.Technologies) == 0 && len(s.Features) == 0 && s.Timeline == ""
}

// IsComplete reports whether all four parts of the selection are filled in.
func (s Selection) IsComplete() bool {
	return s.WebsiteType != "" && len(s.Technologies) > 0 && len(s.Features) > 0 && s.Timeline != ""
}

// Estimate is the presented price band, in whole currency units.
type Estimate struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// EstimateResponse is what the public estimate endpoint returns.
type EstimateResponse struct {
	Estimate
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
	Complete       bool   `json:"complete"`
}
