// internal/app/features/announcements/handler.go
//
// Announcement CRUD. The public listing hides inactive records unless the
// caller asks for all; the toggle endpoint flips is_active without a body.
package announcements

import (
	"context"
	"errors"
	"net/http"

	announcementstore "github.com/dalemusser/clubhub/internal/app/store/announcements"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/httpjson"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all announcement handlers.
type Handler struct {
	DB      *mongo.Database
	Store   *announcementstore.Store
	Log     *zap.Logger
	Verbose bool
}

// NewHandler constructs an announcements Handler.
func NewHandler(db *mongo.Database, verbose bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Store:   announcementstore.New(db),
		Log:     logger,
		Verbose: verbose,
	}
}

func parseID(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return id, err == nil
}

// validateAnnouncement runs the checks in form order and returns the first
// failure.
func validateAnnouncement(a models.Announcement) *inputval.Error {
	if err := inputval.First(
		inputval.OneOf("type", a.Type, models.AnnouncementTypes),
		inputval.Required("title", a.Title),
		inputval.MaxLen("title", a.Title, 200),
		inputval.Required("description", a.Description),
		inputval.MaxLen("description", a.Description, 1000),
	); err != nil {
		return err
	}
	if a.Date.IsZero() {
		return inputval.Failf("date", "date is required")
	}
	if a.Priority != "" {
		return inputval.OneOf("priority", a.Priority, models.Priorities)
	}
	return nil
}

// List handles GET /api/announcements. Filters: type, priority, and
// isActive (true|false|all, default true).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := announcementstore.ListFilter{
		Type:     normalize.QueryParam(query.Get(r, "type")),
		Priority: normalize.Status(query.Get(r, "priority")),
		Active:   normalize.Status(query.Get(r, "isActive")),
	}
	if filter.Type != "" {
		if verr := inputval.OneOf("type", filter.Type, models.AnnouncementTypes); verr != nil {
			httpjson.Fail(w, http.StatusBadRequest, verr.Message)
			return
		}
	}
	if filter.Priority != "" {
		if verr := inputval.OneOf("priority", filter.Priority, models.Priorities); verr != nil {
			httpjson.Fail(w, http.StatusBadRequest, verr.Message)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx, filter)
	if err != nil {
		h.Log.Error("announcements: list failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	httpjson.OK(w, map[string]any{
		"announcements": list,
		"total":         len(list),
	})
}

// Create handles POST /api/announcements.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Announcement
	if err := httpjson.Decode(w, r, &a, limits.MaxJSONBodySize); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := validateAnnouncement(a); verr != nil {
		httpjson.Fail(w, http.StatusBadRequest, verr.Message)
		return
	}

	a.Title = htmlsanitize.Plain(a.Title)
	a.Description = htmlsanitize.Plain(a.Description)
	a.IsActive = true

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, a)
	if err != nil {
		h.Log.Error("announcements: create failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	h.Log.Info("announcements: created",
		zap.String("title", created.Title),
		zap.String("priority", created.Priority))
	httpjson.Created(w, "Announcement created successfully", created)
}

// Get handles GET /api/announcements/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpjson.NotFound(w, "Announcement not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Announcement not found")
			return
		}
		h.Log.Error("announcements: get failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	httpjson.OK(w, a)
}

// Update handles PUT /api/announcements/{id}. The body is a full
// replacement of the editable fields.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpjson.NotFound(w, "Announcement not found")
		return
	}

	var a models.Announcement
	if err := httpjson.Decode(w, r, &a, limits.MaxJSONBodySize); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verr := validateAnnouncement(a); verr != nil {
		httpjson.Fail(w, http.StatusBadRequest, verr.Message)
		return
	}

	a.Title = htmlsanitize.Plain(a.Title)
	a.Description = htmlsanitize.Plain(a.Description)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, id, a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Announcement not found")
			return
		}
		h.Log.Error("announcements: update failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	httpjson.Message(w, "Announcement updated successfully", updated)
}

// Toggle handles PATCH /api/announcements/{id}/toggle. It flips is_active
// unconditionally; there is no request body.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpjson.NotFound(w, "Announcement not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	current, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Announcement not found")
			return
		}
		h.Log.Error("announcements: toggle lookup failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	updated, err := h.Store.SetActive(ctx, id, !current.IsActive)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Announcement not found")
			return
		}
		h.Log.Error("announcements: toggle failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	httpjson.Message(w, "Announcement status toggled", updated)
}

// Delete handles DELETE /api/announcements/{id}. Removal is permanent.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		httpjson.NotFound(w, "Announcement not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("announcements: delete failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	if n == 0 {
		httpjson.NotFound(w, "Announcement not found")
		return
	}

	httpjson.Message(w, "Announcement deleted successfully", nil)
}
