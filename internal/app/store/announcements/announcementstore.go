package announcementstore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// Create inserts a new announcement. Priority defaults to medium and the
// stored priority_rank keeps the default sort priority-dominant.
func (s *Store) Create(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	now := time.Now().UTC()

	a.ID = primitive.NewObjectID()
	a.Title = normalize.Name(a.Title)
	a.TitleCI = text.Fold(a.Title)
	if a.Priority == "" {
		a.Priority = models.PriorityMedium
	}
	a.Priority = normalize.Status(a.Priority)
	a.PriorityRank = models.PriorityRank(a.Priority)
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// GetByID loads an announcement by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var a models.Announcement
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListFilter narrows List results. Active is the raw isActive query value:
// "" or "true" → active only, "false" → inactive only, "all" → both.
type ListFilter struct {
	Type     string
	Priority string
	Active   string
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	switch f.Active {
	case "", "true":
		q["is_active"] = true
	case "false":
		q["is_active"] = false
	case "all":
		// no active clause
	default:
		q["is_active"] = true
	}
	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.Priority != "" {
		q["priority"] = normalize.Status(f.Priority)
	}
	return q
}

// List returns announcements sorted by priority rank descending, then
// creation time descending: a high priority always precedes a medium one
// regardless of which was created first.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "priority_rank", Value: -1},
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := s.c.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var anns []models.Announcement
	if err := cur.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

// Update replaces an announcement's content fields and returns the updated
// document. Returns mongo.ErrNoDocuments for an unknown ID.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, a models.Announcement) (*models.Announcement, error) {
	priority := normalize.Status(a.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}
	set := bson.M{
		"type":          a.Type,
		"title":         normalize.Name(a.Title),
		"title_ci":      text.Fold(normalize.Name(a.Title)),
		"description":   a.Description,
		"date":          a.Date,
		"time":          a.Time,
		"location":      a.Location,
		"link":          a.Link,
		"priority":      priority,
		"priority_rank": models.PriorityRank(priority),
		"updated_at":    time.Now().UTC(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out models.Announcement
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetActive sets is_active and refreshes updated_at.
func (s *Store) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Announcement, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out models.Announcement
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	}}, opts).Decode(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an announcement by ID.
// Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountAll returns total and active announcement counts for the admin
// overview.
func (s *Store) CountAll(ctx context.Context) (total, active int64, err error) {
	if total, err = s.c.CountDocuments(ctx, bson.M{}); err != nil {
		return 0, 0, err
	}
	if active, err = s.c.CountDocuments(ctx, bson.M{"is_active": true}); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}
