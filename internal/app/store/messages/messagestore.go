package messagestore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_messages")}
}

// Create inserts a new contact message with status new.
func (s *Store) Create(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	now := time.Now().UTC()

	msg.ID = primitive.NewObjectID()
	msg.Name = normalize.Name(msg.Name)
	msg.Email = normalize.Email(msg.Email)
	msg.Status = models.MessageNew
	msg.CreatedAt = now
	msg.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, msg); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

// GetByID loads a message by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns messages newest first, optionally filtered by status, with
// skip/limit paging. The second return is the overall matching count.
func (s *Store) List(ctx context.Context, status string, skip, limit int64) ([]models.ContactMessage, int64, error) {
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

	var msgs []models.ContactMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

// UpdateStatus sets the message status and returns the updated document.
// The caller validates enum membership. Returns mongo.ErrNoDocuments for an
// unknown ID.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.ContactMessage, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var msg models.ContactMessage
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     normalize.Status(status),
		"updated_at": time.Now().UTC(),
	}}, opts).Decode(&msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// CountByStatus returns message totals for the admin overview.
func (s *Store) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(models.MessageStatuses)+1)

	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	counts["total"] = total

	for _, st := range models.MessageStatuses {
		n, err := s.c.CountDocuments(ctx, bson.M{"status": st})
		if err != nil {
			return nil, err
		}
		counts[st] = n
	}
	return counts, nil
}
