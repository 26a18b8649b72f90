// internal/app/features/members/routes.go
package members

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the member routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/stats", h.Stats)
	r.Get("/profile/{email}", h.Get)
	r.Put("/profile/{email}", h.Update)
	r.Patch("/profile/{email}/visibility", h.SetVisibility)
	r.Delete("/profile/{email}", h.Delete)
}
