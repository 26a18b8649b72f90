package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateMember inserts a visible member with sensible defaults.
func (f *Fixtures) CreateMember(ctx context.Context, fullName, email string) models.Member {
	f.t.Helper()
	return f.CreateMemberWith(ctx, fullName, email, models.MemberTypeActive, true)
}

// CreateMemberWith inserts a member with an explicit type and visibility.
func (f *Fixtures) CreateMemberWith(ctx context.Context, fullName, email, memberType string, visible bool) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Member{
		ID: primitive.NewObjectID(),
		PersonalInfo: models.PersonalInfo{
			FullName:   fullName,
			Email:      email,
			Phone:      "5550100",
			RollNumber: "21CS0001",
			Branch:     "CSE",
			Year:       models.YearSecond,
		},
		ProfessionalInfo: models.ProfessionalInfo{
			Role:   "Developer",
			Bio:    "Test bio",
			Skills: []string{"Go"},
		},
		MembershipInfo: models.MembershipInfo{
			JoinDate:   now,
			MemberType: memberType,
		},
		FullNameCI: text.Fold(fullName),
		IsVisible:  visible,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return m
}

// CreateApplication inserts a pending application for the email.
func (f *Fixtures) CreateApplication(ctx context.Context, fullName, email string) models.TeamApplication {
	f.t.Helper()

	now := time.Now().UTC()
	app := models.TeamApplication{
		ID: primitive.NewObjectID(),
		PersonalInfo: models.PersonalInfo{
			FullName:   fullName,
			Email:      email,
			Phone:      "5550100",
			RollNumber: "21CS0002",
			Branch:     "CSE",
			Year:       models.YearSecond,
		},
		TechnicalInfo: models.TechnicalInfo{
			Skills:     []string{"Go"},
			Languages:  []string{"Go", "JavaScript"},
			Frameworks: []string{"React"},
			Experience: models.ExperienceBeginner,
		},
		Motivation: models.Motivation{
			WhyJoin:      "I want to build things with other people.",
			Contribution: "Weekly workshop content.",
		},
		Availability: models.Availability{
			HoursPerWeek:  10,
			PreferredRole: "Backend Developer",
		},
		Status:    models.ApplicationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("team_applications").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}

// CreateAnnouncement inserts an announcement with the given priority and
// active flag.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, title, priority string, active bool) models.Announcement {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.Announcement{
		ID:           primitive.NewObjectID(),
		Type:         models.AnnouncementGeneral,
		Title:        title,
		TitleCI:      text.Fold(title),
		Description:  "Test announcement",
		Date:         now,
		Priority:     priority,
		PriorityRank: models.PriorityRank(priority),
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("announcements").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}
	return a
}

// CreateContactMessage inserts a contact message with status new.
func (f *Fixtures) CreateContactMessage(ctx context.Context, name, email, subject string) models.ContactMessage {
	f.t.Helper()

	now := time.Now().UTC()
	msg := models.ContactMessage{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   "Test message body",
		Status:    models.MessageNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("contact_messages").InsertOne(ctx, msg); err != nil {
		f.t.Fatalf("failed to create test contact message: %v", err)
	}
	return msg
}
