// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the contact form routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Submit)
}
