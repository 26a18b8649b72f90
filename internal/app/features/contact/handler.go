// internal/app/features/contact/handler.go
//
// Public contact form. Submissions land in the contact_messages collection
// with status "new"; admins work them from the admin routes.
package contact

import (
	"context"
	"net/http"

	messagestore "github.com/dalemusser/clubhub/internal/app/store/messages"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/httpjson"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the contact form handlers.
type Handler struct {
	DB      *mongo.Database
	Store   *messagestore.Store
	Log     *zap.Logger
	Verbose bool
}

// NewHandler constructs a contact Handler.
func NewHandler(db *mongo.Database, verbose bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Store:   messagestore.New(db),
		Log:     logger,
		Verbose: verbose,
	}
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
//
// A missing field responds with the historical shape
// {"success":false,"error":"Please fill in all fields"} and persists
// nothing. Clients already match on the "error" key, so it stays.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := httpjson.Decode(w, r, &req, limits.MaxJSONBodySize); err != nil {
		httpjson.FailError(w, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		httpjson.FailError(w, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msg, err := h.Store.Create(ctx, models.ContactMessage{
		Name:    htmlsanitize.Plain(req.Name),
		Email:   req.Email,
		Subject: htmlsanitize.Plain(req.Subject),
		Message: htmlsanitize.Plain(req.Message),
	})
	if err != nil {
		h.Log.Error("contact: create message failed", zap.Error(err))
		httpjson.ServerError(w, err, h.Verbose)
		return
	}

	h.Log.Info("contact: message received",
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject))
	httpjson.Created(w, "Message sent successfully", msg)
}
