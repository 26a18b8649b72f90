package contact_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/features/contact"
	messagestore "github.com/dalemusser/clubhub/internal/app/store/messages"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.uber.org/zap"
)

func TestSubmit_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := contact.NewHandler(db, true, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "When is the next meetup?",
	})
	rec := testutil.NewRecorder()

	h.Submit(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertSuccess(t, true)

	var msg models.ContactMessage
	rec.DecodeData(t, &msg)
	if msg.Status != models.MessageNew {
		t.Errorf("status = %q, want %q", msg.Status, models.MessageNew)
	}
}

func TestSubmit_MissingField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := contact.NewHandler(db, true, zap.NewNop())

	// subject omitted
	req := testutil.NewJSONRequest(t, "POST", "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "No subject here",
	})
	rec := testutil.NewRecorder()

	h.Submit(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	body := rec.Envelope(t)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	// historical shape: the failure text lives under "error", not "message"
	if body["error"] != "Please fill in all fields" {
		t.Errorf("error = %v, want %q", body["error"], "Please fill in all fields")
	}
	if _, ok := body["message"]; ok {
		t.Error("missing-field failure must not set a message field")
	}

	// nothing persisted
	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, total, err := messagestore.New(db).List(ctx, "", 0, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 {
		t.Errorf("messages persisted = %d, want 0", total)
	}
}

func TestSubmit_StripsMarkup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := contact.NewHandler(db, true, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/contact", map[string]string{
		"name":    "<b>Visitor</b>",
		"email":   "visitor@example.com",
		"subject": "<script>alert(1)</script>Hi",
		"message": "Plain text",
	})
	rec := testutil.NewRecorder()

	h.Submit(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	var msg models.ContactMessage
	rec.DecodeData(t, &msg)
	if msg.Name != "Visitor" {
		t.Errorf("name = %q, want markup removed", msg.Name)
	}
	if msg.Subject != "Hi" {
		t.Errorf("subject = %q, want script removed", msg.Subject)
	}
}
