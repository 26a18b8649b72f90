// internal/app/features/team/handler.go
//
// Public team-application surface: submit an application, check its status
// by email, and list applications. Review actions live under /api/admin.
package team

import (
	"context"
	"errors"
	"net/http"
	"time"

	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/httpjson"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/app/system/paging"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the team application handlers.
type Handler struct {
	DB      *mongo.Database
	Store   *applicationstore.Store
	Log     *zap.Logger
	Verbose bool
}

// NewHandler constructs a team Handler.
func NewHandler(db *mongo.Database, verbose bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Store:   applicationstore.New(db),
		Log:     logger,
		Verbose: verbose,
	}
}

// validateApplication runs the submission checks in form order and returns
// the first failure.
func validateApplication(app models.TeamApplication) *inputval.Error {
	if err := inputval.First(
		inputval.Required("fullName", app.PersonalInfo.FullName),
		inputval.Required("email", app.PersonalInfo.Email),
		inputval.Email("email", app.PersonalInfo.Email),
		inputval.Required("phone", app.PersonalInfo.Phone),
		inputval.Required("rollNumber", app.PersonalInfo.RollNumber),
		inputval.Required("branch", app.PersonalInfo.Branch),
		inputval.OneOf("year", app.PersonalInfo.Year, models.Years),
	); err != nil {
		return err
	}
	if err := inputval.First(
		inputval.RequiredSlice("skills", app.TechnicalInfo.Skills),
		inputval.OneOf("experience", app.TechnicalInfo.Experience, models.ExperienceLevels),
	); err != nil {
		return err
	}
	if err := inputval.First(
		inputval.Required("whyJoin", app.Motivation.WhyJoin),
		inputval.MaxLen("whyJoin", app.Motivation.WhyJoin, 500),
		inputval.Required("contribution", app.Motivation.Contribution),
		inputval.MaxLen("contribution", app.Motivation.Contribution, 500),
	); err != nil {
		return err
	}
	return inputval.First(
		inputval.IntRange("hoursPerWeek", app.Availability.HoursPerWeek, 1, 40),
		inputval.OneOf("preferredRole", app.Availability.PreferredRole, models.PreferredRoles),
	)
}

// Apply handles POST /api/team/apply.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var app models.TeamApplication
	if err := httpjson.Decode(w, r, &app, limits.MaxJSONBodySize); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := validateApplication(app); verr != nil {
		httpjson.Fail(w, http.StatusBadRequest, verr.Message)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Friendly pre-check; the unique index still backstops concurrent
	// submissions with the same email.
	exists, err := h.Store.ExistsByEmail(ctx, app.PersonalInfo.Email)
	if err != nil {
		h.Log.Error("team: duplicate pre-check failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	if exists {
		httpjson.Fail(w, http.StatusConflict, "An application with this email already exists")
		return
	}

	app.Motivation.WhyJoin = htmlsanitize.Plain(app.Motivation.WhyJoin)
	app.Motivation.Contribution = htmlsanitize.Plain(app.Motivation.Contribution)
	app.Motivation.PreviousProjects = htmlsanitize.Plain(app.Motivation.PreviousProjects)

	created, err := h.Store.Create(ctx, app)
	if err != nil {
		if errors.Is(err, applicationstore.ErrDuplicateEmail) {
			httpjson.Fail(w, http.StatusConflict, "An application with this email already exists")
			return
		}
		h.Log.Error("team: create application failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	h.Log.Info("team: application submitted",
		zap.String("email", created.PersonalInfo.Email),
		zap.String("preferredRole", created.Availability.PreferredRole))
	httpjson.Created(w, "Application submitted successfully", created)
}

// statusResponse is the trimmed view returned by the status lookup.
type statusResponse struct {
	Status     string     `json:"status"`
	AdminNotes string     `json:"adminNotes,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	AppliedAt  time.Time  `json:"appliedAt"`
}

// Status handles GET /api/team/status/{email}.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(chi.URLParam(r, "email"))
	if email == "" {
		httpjson.Fail(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	app, err := h.Store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "No application found for this email")
			return
		}
		h.Log.Error("team: status lookup failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	httpjson.OK(w, statusResponse{
		Status:     app.Status,
		AdminNotes: app.AdminNotes,
		ReviewedAt: app.ReviewedAt,
		AppliedAt:  app.CreatedAt,
	})
}

// applicationsPage is the pagination block plus the overall match count.
type applicationsPage struct {
	httpjson.Page
	TotalApplications int64 `json:"totalApplications"`
}

// List handles GET /api/team/applications.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
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
	apps, total, err := h.Store.List(ctx, status, p.Skip(), int64(p.Limit))
	if err != nil {
		h.Log.Error("team: list applications failed", zap.Error(err))
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
