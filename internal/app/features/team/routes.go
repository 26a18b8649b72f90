// internal/app/features/team/routes.go
package team

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the team application routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/apply", h.Apply)
	r.Get("/status/{email}", h.Status)
	r.Get("/applications", h.List)
}
