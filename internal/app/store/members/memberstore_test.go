package memberstore_test

import (
	"testing"
	"time"

	memberstore "github.com/dalemusser/clubhub/internal/app/store/members"
	"github.com/dalemusser/clubhub/internal/app/system/indexes"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newMember(fullName, email string) models.Member {
	return models.Member{
		PersonalInfo: models.PersonalInfo{
			FullName:   fullName,
			Email:      email,
			Phone:      "5550100",
			RollNumber: "21cs0001",
			Branch:     "CSE",
			Year:       models.YearSecond,
		},
		ProfessionalInfo: models.ProfessionalInfo{
			Role:   "Developer",
			Bio:    "Builds things",
			Skills: []string{"Go", "React"},
		},
		IsVisible: true,
	}
}

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().UTC().Add(-time.Second)
	created, err := store.Create(ctx, newMember("Ada Lovelace", "ADA@Example.COM"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.PersonalInfo.Email != "ada@example.com" {
		t.Errorf("email = %q, want lowercased", created.PersonalInfo.Email)
	}
	if created.PersonalInfo.RollNumber != "21CS0001" {
		t.Errorf("roll number = %q, want uppercased", created.PersonalInfo.RollNumber)
	}
	if !created.IsVisible {
		t.Error("expected IsVisible true")
	}
	if created.MembershipInfo.MemberType != models.MemberTypeActive {
		t.Errorf("member type = %q, want default %q", created.MembershipInfo.MemberType, models.MemberTypeActive)
	}
	if created.MembershipInfo.JoinDate.Before(before) {
		t.Error("expected JoinDate to default to the creation instant")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

// Uniqueness is scoped to visible members: a duplicate of a visible email
// conflicts, a duplicate of a hidden member's email does not.
func TestStore_Create_VisibilityScopedUniqueness(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctxIdx, cancelIdx := testutil.TestContext()
	defer cancelIdx()
	// the partial unique index enforces the scope
	if err := indexes.EnsureAll(ctxIdx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, newMember("First", "shared@example.com")); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	if _, err := store.Create(ctx, newMember("Second", "shared@example.com")); err != memberstore.ErrDuplicateEmail {
		t.Fatalf("duplicate visible create: err = %v, want ErrDuplicateEmail", err)
	}

	hidden := newMember("Hidden", "hidden@example.com")
	hidden.IsVisible = false
	if _, err := store.Create(ctx, hidden); err != nil {
		t.Fatalf("hidden Create failed: %v", err)
	}

	// same email as the hidden member must succeed
	if _, err := store.Create(ctx, newMember("Visible Twin", "hidden@example.com")); err != nil {
		t.Errorf("create colliding only with a hidden member should succeed, got %v", err)
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, newMember("Case Test", "Case@Example.Com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByEmail(ctx, "CASE@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.PersonalInfo.FullName != "Case Test" {
		t.Errorf("FullName = %q, want %q", got.PersonalInfo.FullName, "Case Test")
	}

	if _, err := store.GetByEmail(ctx, "missing@example.com"); err != mongo.ErrNoDocuments {
		t.Errorf("missing email: err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_List_VisibilityFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	f.CreateMemberWith(ctx, "Visible One", "v1@example.com", models.MemberTypeActive, true)
	f.CreateMemberWith(ctx, "Visible Two", "v2@example.com", models.MemberTypeCore, true)
	f.CreateMemberWith(ctx, "Hidden One", "h1@example.com", models.MemberTypeActive, false)

	visible, err := store.List(ctx, memberstore.ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(visible) != 2 {
		t.Errorf("default list returned %d members, want 2 visible", len(visible))
	}

	all, err := store.List(ctx, memberstore.ListFilter{Visibility: "all"})
	if err != nil {
		t.Fatalf("List(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("list(all) returned %d members, want 3", len(all))
	}

	core, err := store.List(ctx, memberstore.ListFilter{MemberType: models.MemberTypeCore})
	if err != nil {
		t.Fatalf("List(core) failed: %v", err)
	}
	if len(core) != 1 {
		t.Errorf("list(core) returned %d members, want 1", len(core))
	}
}

func TestStore_SetVisibility_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, newMember("Toggle Me", "toggle@example.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// setting an explicit value twice leaves it at that value, not a flip
	for i := 0; i < 2; i++ {
		m, err := store.SetVisibility(ctx, "toggle@example.com", false)
		if err != nil {
			t.Fatalf("SetVisibility round %d failed: %v", i+1, err)
		}
		if m.IsVisible {
			t.Errorf("round %d: IsVisible = true, want false", i+1)
		}
	}
}

func TestStore_UpdateByEmail_RefreshesUpdatedAt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newMember("Update Me", "update@example.com"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	pro := created.ProfessionalInfo
	pro.Bio = "New bio"
	updated, err := store.UpdateByEmail(ctx, "update@example.com", memberstore.Update{ProfessionalInfo: &pro})
	if err != nil {
		t.Fatalf("UpdateByEmail failed: %v", err)
	}
	if updated.ProfessionalInfo.Bio != "New bio" {
		t.Errorf("Bio = %q, want %q", updated.ProfessionalInfo.Bio, "New bio")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected UpdatedAt to be refreshed by the update")
	}

	if _, err := store.UpdateByEmail(ctx, "missing@example.com", memberstore.Update{}); err != mongo.ErrNoDocuments {
		t.Errorf("missing email: err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_DeleteByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, newMember("Delete Me", "delete@example.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.DeleteByEmail(ctx, "Delete@Example.com")
	if err != nil {
		t.Fatalf("DeleteByEmail failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}

	// hard delete: the record is gone, not tombstoned
	if _, err := store.GetByEmail(ctx, "delete@example.com"); err != mongo.ErrNoDocuments {
		t.Errorf("after delete: err = %v, want mongo.ErrNoDocuments", err)
	}

	n, err = store.DeleteByEmail(ctx, "delete@example.com")
	if err != nil {
		t.Fatalf("second DeleteByEmail failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second delete removed %d, want 0", n)
	}
}

func TestStore_StatsByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	f.CreateMemberWith(ctx, "Core One", "c1@example.com", models.MemberTypeCore, true)
	f.CreateMemberWith(ctx, "Active One", "a1@example.com", models.MemberTypeActive, true)
	f.CreateMemberWith(ctx, "Active Two", "a2@example.com", models.MemberTypeActive, true)
	f.CreateMemberWith(ctx, "Hidden Alum", "h1@example.com", models.MemberTypeAlumni, false)

	st, err := store.StatsByType(ctx)
	if err != nil {
		t.Fatalf("StatsByType failed: %v", err)
	}
	if st.Total != 3 {
		t.Errorf("Total = %d, want 3 (hidden members excluded)", st.Total)
	}
	if st.Core != 1 || st.Active != 2 || st.Alumni != 0 {
		t.Errorf("counts = core %d active %d alumni %d, want 1/2/0", st.Core, st.Active, st.Alumni)
	}
}
