// internal/app/features/members/handler.go
//
// Team-member profiles: public listing and self-service creation, plus
// email-keyed profile management. When the collection is empty and no
// filters are applied, listing falls back to the roster the caller injected
// so a fresh deployment still renders a team page.
package members

import (
	"context"
	"errors"
	"net/http"

	memberstore "github.com/dalemusser/clubhub/internal/app/store/members"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/httpjson"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the member profile handlers.
type Handler struct {
	DB       *mongo.Database
	Store    *memberstore.Store
	Fallback []models.Member
	Log      *zap.Logger
	Verbose  bool
}

// NewHandler constructs a members Handler. fallback is the roster returned
// by an unfiltered list when the collection is empty; pass nil to disable.
func NewHandler(db *mongo.Database, fallback []models.Member, verbose bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Store:    memberstore.New(db),
		Fallback: fallback,
		Log:      logger,
		Verbose:  verbose,
	}
}

// validateMember runs the profile checks in form order and returns the
// first failure.
func validateMember(m models.Member) *inputval.Error {
	if err := inputval.First(
		inputval.Required("fullName", m.PersonalInfo.FullName),
		inputval.Required("email", m.PersonalInfo.Email),
		inputval.Email("email", m.PersonalInfo.Email),
		inputval.Required("phone", m.PersonalInfo.Phone),
		inputval.Required("rollNumber", m.PersonalInfo.RollNumber),
		inputval.Required("branch", m.PersonalInfo.Branch),
		inputval.OneOf("year", m.PersonalInfo.Year, models.Years),
	); err != nil {
		return err
	}
	if err := inputval.First(
		inputval.Required("role", m.ProfessionalInfo.Role),
		inputval.MaxLen("bio", m.ProfessionalInfo.Bio, 300),
		inputval.RequiredSlice("skills", m.ProfessionalInfo.Skills),
	); err != nil {
		return err
	}
	if m.MembershipInfo.MemberType != "" {
		return inputval.OneOf("memberType", m.MembershipInfo.MemberType, models.MemberTypes)
	}
	return nil
}

// List handles GET /api/members. Filters: memberType (core|active|alumni)
// and isVisible (true|false|all, default true).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := memberstore.ListFilter{
		MemberType: normalize.Status(query.Get(r, "memberType")),
		Visibility: normalize.Status(query.Get(r, "isVisible")),
	}
	if filter.MemberType != "" {
		if verr := inputval.OneOf("memberType", filter.MemberType, models.MemberTypes); verr != nil {
			httpjson.Fail(w, http.StatusBadRequest, verr.Message)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx, filter)
	if err != nil {
		h.Log.Error("members: list failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	if len(list) == 0 && filter.MemberType == "" && filter.Visibility == "" && len(h.Fallback) > 0 {
		httpjson.OK(w, map[string]any{
			"members":  h.Fallback,
			"total":    len(h.Fallback),
			"fallback": true,
		})
		return
	}

	httpjson.OK(w, map[string]any{
		"members": list,
		"total":   len(list),
	})
}

// Create handles POST /api/members.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var m models.Member
	if err := httpjson.Decode(w, r, &m, limits.MaxJSONBodySize); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := validateMember(m); verr != nil {
		httpjson.Fail(w, http.StatusBadRequest, verr.Message)
		return
	}

	m.ProfessionalInfo.Bio = htmlsanitize.Plain(m.ProfessionalInfo.Bio)
	m.ProfessionalInfo.Skills = htmlsanitize.PlainSlice(m.ProfessionalInfo.Skills)
	m.IsVisible = true

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Friendly pre-check; the partial unique index still backstops
	// concurrent creates with the same visible email.
	exists, err := h.Store.ExistsVisibleByEmail(ctx, m.PersonalInfo.Email)
	if err != nil {
		h.Log.Error("members: duplicate pre-check failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	if exists {
		httpjson.Fail(w, http.StatusConflict, "A member with this email already exists")
		return
	}

	created, err := h.Store.Create(ctx, m)
	if err != nil {
		if errors.Is(err, memberstore.ErrDuplicateEmail) {
			httpjson.Fail(w, http.StatusConflict, "A member with this email already exists")
			return
		}
		h.Log.Error("members: create failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	h.Log.Info("members: profile created", zap.String("email", created.PersonalInfo.Email))
	httpjson.Created(w, "Member created successfully", created)
}

// Stats handles GET /api/members/stats: counts by memberType among visible
// members.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	st, err := h.Store.StatsByType(ctx)
	if err != nil {
		h.Log.Error("members: stats failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	httpjson.OK(w, st)
}

// Get handles GET /api/members/profile/{email}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(chi.URLParam(r, "email"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Member not found")
			return
		}
		h.Log.Error("members: get failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	httpjson.OK(w, m)
}

type updateRequest struct {
	PersonalInfo     *models.PersonalInfo     `json:"personalInfo"`
	ProfessionalInfo *models.ProfessionalInfo `json:"professionalInfo"`
	MembershipInfo   *models.MembershipInfo   `json:"membershipInfo"`
}

// Update handles PUT /api/members/profile/{email}. Only the sections
// present in the body are replaced.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(chi.URLParam(r, "email"))

	var req updateRequest
	if err := httpjson.Decode(w, r, &req, limits.MaxJSONBodySize); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PersonalInfo == nil && req.ProfessionalInfo == nil && req.MembershipInfo == nil {
		httpjson.Fail(w, http.StatusBadRequest, "No profile sections to update")
		return
	}

	if req.PersonalInfo != nil {
		if verr := inputval.First(
			inputval.Required("fullName", req.PersonalInfo.FullName),
			inputval.Required("email", req.PersonalInfo.Email),
			inputval.Email("email", req.PersonalInfo.Email),
			inputval.OneOf("year", req.PersonalInfo.Year, models.Years),
		); verr != nil {
			httpjson.Fail(w, http.StatusBadRequest, verr.Message)
			return
		}
	}
	if req.ProfessionalInfo != nil {
		if verr := inputval.First(
			inputval.Required("role", req.ProfessionalInfo.Role),
			inputval.MaxLen("bio", req.ProfessionalInfo.Bio, 300),
			inputval.RequiredSlice("skills", req.ProfessionalInfo.Skills),
		); verr != nil {
			httpjson.Fail(w, http.StatusBadRequest, verr.Message)
			return
		}
		req.ProfessionalInfo.Bio = htmlsanitize.Plain(req.ProfessionalInfo.Bio)
		req.ProfessionalInfo.Skills = htmlsanitize.PlainSlice(req.ProfessionalInfo.Skills)
	}
	if req.MembershipInfo != nil && req.MembershipInfo.MemberType != "" {
		if verr := inputval.OneOf("memberType", req.MembershipInfo.MemberType, models.MemberTypes); verr != nil {
			httpjson.Fail(w, http.StatusBadRequest, verr.Message)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.UpdateByEmail(ctx, email, memberstore.Update{
		PersonalInfo:     req.PersonalInfo,
		ProfessionalInfo: req.ProfessionalInfo,
		MembershipInfo:   req.MembershipInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "Member not found")
		case errors.Is(err, memberstore.ErrDuplicateEmail):
			httpjson.Fail(w, http.StatusConflict, "A member with this email already exists")
		default:
			h.Log.Error("members: update failed", zap.Error(err))
			httpjson.ServerError(w, err, h.Verbose)
		}
		return
	}

	httpjson.Message(w, "Member updated successfully", updated)
}

type visibilityRequest struct {
	IsVisible *bool `json:"isVisible"`
}

// SetVisibility handles PATCH /api/members/profile/{email}/visibility.
// The target value must be passed explicitly; this endpoint never flips.
func (h *Handler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(chi.URLParam(r, "email"))

	var req visibilityRequest
	if err := httpjson.Decode(w, r, &req, limits.MaxJSONBodySize); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.IsVisible == nil {
		httpjson.Fail(w, http.StatusBadRequest, "isVisible is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Store.SetVisibility(ctx, email, *req.IsVisible)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "Member not found")
		case errors.Is(err, memberstore.ErrDuplicateEmail):
			httpjson.Fail(w, http.StatusConflict, "A visible member with this email already exists")
		default:
			h.Log.Error("members: set visibility failed", zap.Error(err))
			httpjson.ServerError(w, err, h.Verbose)
		}
		return
	}

	httpjson.Message(w, "Member visibility updated", m)
}

// Delete handles DELETE /api/members/profile/{email}. Removal is permanent.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(chi.URLParam(r, "email"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.DeleteByEmail(ctx, email)
	if err != nil {
		h.Log.Error("members: delete failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}
	if n == 0 {
		httpjson.NotFound(w, "Member not found")
		return
	}

	h.Log.Info("members: profile deleted", zap.String("email", email))
	httpjson.Message(w, "Member deleted successfully", nil)
}
