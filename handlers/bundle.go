// File: handlers/bundle.go
package handlers

import (
	"agencysite/middleware"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Resolves bearer tokens for the admin middleware.
	Auth middleware.AdminAuthenticator

	AdminHandler           *AdminHandler
	PricingHandler         *PricingHandler
	BookingHandler         *BookingHandler
	BookingSettingsHandler *BookingSettingsHandler
}
