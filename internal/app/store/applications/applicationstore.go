package applicationstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("team_applications")}
}

// ErrDuplicateEmail is returned when an application already exists for the
// email. A unique index on personal_info.email backs this, so two concurrent
// submissions cannot both insert.
var ErrDuplicateEmail = errors.New("an application with this email already exists")

// Create inserts a new application with status pending.
func (s *Store) Create(ctx context.Context, app models.TeamApplication) (models.TeamApplication, error) {
	now := time.Now().UTC()

	app.ID = primitive.NewObjectID()
	app.PersonalInfo.FullName = normalize.Name(app.PersonalInfo.FullName)
	app.PersonalInfo.Email = normalize.Email(app.PersonalInfo.Email)
	app.PersonalInfo.RollNumber = normalize.RollNumber(app.PersonalInfo.RollNumber)
	app.TechnicalInfo.Skills = normalize.StringSlice(app.TechnicalInfo.Skills)
	app.TechnicalInfo.Languages = normalize.StringSlice(app.TechnicalInfo.Languages)
	app.TechnicalInfo.Frameworks = normalize.StringSlice(app.TechnicalInfo.Frameworks)

	app.Status = models.ApplicationPending
	app.AdminNotes = ""
	app.ReviewedAt = nil
	app.ReviewedBy = ""
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, app); err != nil {
		if wafflemongo.IsDup(err) {
			return models.TeamApplication{}, ErrDuplicateEmail
		}
		return models.TeamApplication{}, err
	}
	return app, nil
}

// GetByID loads an application by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TeamApplication, error) {
	var app models.TeamApplication
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByEmail looks up an application by case-insensitive email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.TeamApplication, error) {
	var app models.TeamApplication
	if err := s.c.FindOne(ctx, bson.M{"personal_info.email": normalize.Email(email)}).Decode(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ExistsByEmail reports whether any application uses the email. The unique
// index remains the authoritative guard; this only enables a friendly error
// before attempting the insert.
func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"personal_info.email": normalize.Email(email)}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// List returns applications newest first, optionally filtered by status,
// with skip/limit paging. The second return is the overall matching count.
func (s *Store) List(ctx context.Context, status string, skip, limit int64) ([]models.TeamApplication, int64, error) {
	q := bson.M{}
	if status != "" {
		q["status"] = normalize.Status(status)
	}

	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var apps []models.TeamApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

// Review holds the fields an admin status update writes.
type Review struct {
	Status     string
	AdminNotes string
	ReviewedBy string
}

// UpdateStatus applies an admin review and returns the updated application.
// Transitions are unrestricted: any status may move to any other. The
// caller validates enum membership; this method records the review
// unconditionally. Returns mongo.ErrNoDocuments for an unknown ID.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, rev Review) (*models.TeamApplication, error) {
	now := time.Now().UTC()
	set := bson.M{
		"status":      normalize.Status(rev.Status),
		"admin_notes": rev.AdminNotes,
		"reviewed_at": now,
		"reviewed_by": normalize.Name(rev.ReviewedBy),
		"updated_at":  now,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var app models.TeamApplication
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

// CountByStatus returns application totals for the admin overview.
func (s *Store) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(models.ApplicationStatuses)+1)

	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	counts["total"] = total

	for _, st := range models.ApplicationStatuses {
		n, err := s.c.CountDocuments(ctx, bson.M{"status": st})
		if err != nil {
			return nil, err
		}
		counts[st] = n
	}
	return counts, nil
}
