package messagestore_test

import (
	"testing"

	messagestore "github.com/dalemusser/clubhub/internal/app/store/messages"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create_ForcesNewStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := messagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.ContactMessage{
		Name:    "Visitor",
		Email:   "Visitor@Example.COM",
		Subject: "Question",
		Message: "When is the next meetup?",
		Status:  models.MessageReplied, // ignored on create
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.MessageNew {
		t.Errorf("status = %q, want forced %q", created.Status, models.MessageNew)
	}
	if created.Email != "visitor@example.com" {
		t.Errorf("email = %q, want lowercased", created.Email)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := messagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	msg := f.CreateContactMessage(ctx, "Asker", "asker@example.com", "Hello")

	updated, err := store.UpdateStatus(ctx, msg.ID, models.MessageRead)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.MessageRead {
		t.Errorf("status = %q, want %q", updated.Status, models.MessageRead)
	}
	if !updated.UpdatedAt.After(msg.UpdatedAt) {
		t.Error("expected UpdatedAt to be refreshed")
	}

	// a fresh read sees the persisted status, not just the returned doc
	got, err := store.GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.MessageRead {
		t.Errorf("reloaded status = %q, want %q", got.Status, models.MessageRead)
	}

	if _, err := store.UpdateStatus(ctx, primitive.NewObjectID(), models.MessageRead); err != mongo.ErrNoDocuments {
		t.Errorf("unknown id: err = %v, want mongo.ErrNoDocuments", err)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("GetByID unknown id: err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_List_FilterAndPaging(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := messagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	m1 := f.CreateContactMessage(ctx, "One", "one@example.com", "First")
	f.CreateContactMessage(ctx, "Two", "two@example.com", "Second")
	f.CreateContactMessage(ctx, "Three", "three@example.com", "Third")

	if _, err := store.UpdateStatus(ctx, m1.ID, models.MessageReplied); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	replied, total, err := store.List(ctx, models.MessageReplied, 0, 10)
	if err != nil {
		t.Fatalf("List(replied) failed: %v", err)
	}
	if total != 1 || len(replied) != 1 {
		t.Errorf("replied list: total %d len %d, want 1/1", total, len(replied))
	}

	page, total, err := store.List(ctx, "", 0, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(page) != 2 {
		t.Errorf("page length = %d, want 2", len(page))
	}

	counts, err := store.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}
	if counts["total"] != 3 || counts[models.MessageNew] != 2 || counts[models.MessageReplied] != 1 {
		t.Errorf("counts = %v, want total 3, new 2, replied 1", counts)
	}
}
