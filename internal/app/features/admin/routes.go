// internal/app/features/admin/routes.go
package admin

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the admin routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/stats", h.Stats)
	r.Get("/applications", h.ListApplications)
	r.Patch("/applications/{id}/status", h.UpdateApplicationStatus)
	r.Get("/contacts", h.ListContacts)
	r.Patch("/contacts/{id}/status", h.UpdateContactStatus)
}
