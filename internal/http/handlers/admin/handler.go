package admin

import "github.com/tikprofil/tikprofil-api/internal/provider"

// Handler serves the staff-facing admin API. Every route is scoped to the
// business carried in the staff token.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
