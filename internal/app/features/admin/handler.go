// internal/app/features/admin/handler.go
//
// Admin review surface: aggregate stats, application review, and contact
// message triage. No access control exists yet; a real deployment must put
// an auth gate in front of this router before exposing it.
package admin

import (
	"context"
	"errors"
	"net/http"

	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	announcementstore "github.com/dalemusser/clubhub/internal/app/store/announcements"
	memberstore "github.com/dalemusser/clubhub/internal/app/store/members"
	messagestore "github.com/dalemusser/clubhub/internal/app/store/messages"
	"github.com/dalemusser/clubhub/internal/app/system/httpjson"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/app/system/paging"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the admin handlers and reaches into every store.
type Handler struct {
	DB            *mongo.Database
	Members       *memberstore.Store
	Applications  *applicationstore.Store
	Announcements *announcementstore.Store
	Messages      *messagestore.Store
	Log           *zap.Logger
	Verbose       bool
}

// NewHandler constructs an admin Handler.
func NewHandler(db *mongo.Database, verbose bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Members:       memberstore.New(db),
		Applications:  applicationstore.New(db),
		Announcements: announcementstore.New(db),
		Messages:      messagestore.New(db),
		Log:           logger,
		Verbose:       verbose,
	}
}

// Stats handles GET /api/admin/stats: aggregate counts across all four
// collections.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	membersTotal, membersVisible, err := h.Members.CountAll(ctx)
	if err != nil {
		h.Log.Error("admin: member counts failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	appCounts, err := h.Applications.CountByStatus(ctx)
	if err != nil {
		h.Log.Error("admin: application counts failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	annTotal, annActive, err := h.Announcements.CountAll(ctx)
	if err != nil {
		h.Log.Error("admin: announcement counts failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	msgCounts, err := h.Messages.CountByStatus(ctx)
	if err != nil {
		h.Log.Error("admin: message counts failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	httpjson.OK(w, map[string]any{
		"members": map[string]any{
			"total":   membersTotal,
			"visible": membersVisible,
		},
		"applications": appCounts,
		"announcements": map[string]any{
			"total":  annTotal,
			"active": annActive,
		},
		"messages": msgCounts,
	})
}

// applicationsPage is the pagination block plus the overall match count.
type applicationsPage struct {
	httpjson.Page
	TotalApplications int64 `json:"totalApplications"`
}

// ListApplications handles GET /api/admin/applications.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	status := normalize.Status(query.Get(r, "status"))
	if status != "" {
		if verr := inputval.OneOf("status", status, models.ApplicationStatuses); verr != nil {
			httpjson.Fail(w, http.StatusBadRequest, "Invalid status")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	apps, total, err := h.Applications.List(ctx, status, p.Skip(), int64(p.Limit))
	if err != nil {
		h.Log.Error("admin: list applications failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	httpjson.OK(w, map[string]any{
		"applications": apps,
		"pagination": applicationsPage{
			Page: httpjson.Page{
				Current: p.Page,
				Total:   paging.TotalPages(total, p.Limit),
				Count:   len(apps),
			},
			TotalApplications: total,
		},
	})
}

type reviewRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
	ReviewedBy string `json:"reviewedBy"`
}

// UpdateApplicationStatus handles PATCH /api/admin/applications/{id}/status.
// Transitions are unrestricted; only enum membership is checked.
func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Application not found")
		return
	}

	var req reviewRequest
	if err := httpjson.Decode(w, r, &req, limits.MaxJSONBodySize); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := normalize.Status(req.Status)
	if verr := inputval.OneOf("status", status, models.ApplicationStatuses); verr != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Applications.UpdateStatus(ctx, id, applicationstore.Review{
		Status:     status,
		AdminNotes: req.AdminNotes,
		ReviewedBy: req.ReviewedBy,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Application not found")
			return
		}
		h.Log.Error("admin: update application status failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	h.Log.Info("admin: application reviewed",
		zap.String("email", updated.PersonalInfo.Email),
		zap.String("status", updated.Status))
	httpjson.Message(w, "Application status updated", updated)
}

// messagesPage is the pagination block plus the overall match count.
type messagesPage struct {
	httpjson.Page
	TotalMessages int64 `json:"totalMessages"`
}

// ListContacts handles GET /api/admin/contacts.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	status := normalize.Status(query.Get(r, "status"))
	if status != "" {
		if verr := inputval.OneOf("status", status, models.MessageStatuses); verr != nil {
			httpjson.Fail(w, http.StatusBadRequest, "Invalid status")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	msgs, total, err := h.Messages.List(ctx, status, p.Skip(), int64(p.Limit))
	if err != nil {
		h.Log.Error("admin: list contacts failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	httpjson.OK(w, map[string]any{
		"messages": msgs,
		"pagination": messagesPage{
			Page: httpjson.Page{
				Current: p.Page,
				Total:   paging.TotalPages(total, p.Limit),
				Count:   len(msgs),
			},
			TotalMessages: total,
		},
	})
}

type messageStatusRequest struct {
	Status string `json:"status"`
}

// UpdateContactStatus handles PATCH /api/admin/contacts/{id}/status.
func (h *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Message not found")
		return
	}

	var req messageStatusRequest
	if err := httpjson.Decode(w, r, &req, limits.MaxJSONBodySize); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := normalize.Status(req.Status)
	if verr := inputval.OneOf("status", status, models.MessageStatuses); verr != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Messages.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Message not found")
			return
		}
		h.Log.Error("admin: update message status failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	httpjson.Message(w, "Message status updated", updated)
}
