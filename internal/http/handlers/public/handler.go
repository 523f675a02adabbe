package public

import "github.com/tikprofil/tikprofil-api/internal/provider"

// Handler serves the customer-facing API: business profiles, menus,
// coupon validation, checkout and order tracking. No authentication.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
