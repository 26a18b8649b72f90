package memberstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
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
	return &Store{c: db.Collection("members")}
}

// ErrDuplicateEmail is returned when a visible member with the email already
// exists. Uniqueness is scoped to visible members by a partial unique index,
// so the constraint is enforced atomically at the storage layer.
var ErrDuplicateEmail = errors.New("a member with this email already exists")

// Create inserts a new member after normalizing fields and filling defaults.
func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	now := time.Now().UTC()

	m.ID = primitive.NewObjectID()
	m.PersonalInfo.FullName = normalize.Name(m.PersonalInfo.FullName)
	m.FullNameCI = text.Fold(m.PersonalInfo.FullName)
	m.PersonalInfo.Email = normalize.Email(m.PersonalInfo.Email)
	m.PersonalInfo.RollNumber = normalize.RollNumber(m.PersonalInfo.RollNumber)
	m.ProfessionalInfo.Skills = normalize.StringSlice(m.ProfessionalInfo.Skills)

	if m.MembershipInfo.MemberType == "" {
		m.MembershipInfo.MemberType = models.MemberTypeActive
	}
	if m.MembershipInfo.JoinDate.IsZero() {
		m.MembershipInfo.JoinDate = now
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Member{}, ErrDuplicateEmail
		}
		return models.Member{}, err
	}
	return m, nil
}

// ExistsVisibleByEmail reports whether a visible member already holds the
// email. Callers use it for a friendly conflict message; the partial unique
// index is the authoritative guard under concurrency.
func (s *Store) ExistsVisibleByEmail(ctx context.Context, email string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"personal_info.email": normalize.Email(email),
		"is_visible":          true,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByEmail looks up a member by case-insensitive email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"personal_info.email": normalize.Email(email)}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListFilter narrows List results. Visibility is the raw query value:
// "" or "true" → visible only, "false" → hidden only, "all" → both.
type ListFilter struct {
	MemberType string
	Visibility string
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	switch f.Visibility {
	case "", "true":
		q["is_visible"] = true
	case "false":
		q["is_visible"] = false
	case "all":
		// no visibility clause
	default:
		q["is_visible"] = true
	}
	if f.MemberType != "" {
		q["membership_info.member_type"] = normalize.Status(f.MemberType)
	}
	return q
}

// List returns members matching the filter, newest join date first.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Member, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "membership_info.join_date", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := s.c.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Update holds the profile fields a member update may change. Nil sections
// are left untouched.
type Update struct {
	PersonalInfo     *models.PersonalInfo
	ProfessionalInfo *models.ProfessionalInfo
	MembershipInfo   *models.MembershipInfo
}

// UpdateByEmail applies the update to the member with the given email and
// returns the updated document. Every update path refreshes updated_at.
// Returns mongo.ErrNoDocuments when the email has no matching member.
func (s *Store) UpdateByEmail(ctx context.Context, email string, upd Update) (*models.Member, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.PersonalInfo != nil {
		pi := *upd.PersonalInfo
		pi.FullName = normalize.Name(pi.FullName)
		pi.Email = normalize.Email(pi.Email)
		pi.RollNumber = normalize.RollNumber(pi.RollNumber)
		set["personal_info"] = pi
		set["full_name_ci"] = text.Fold(pi.FullName)
	}
	if upd.ProfessionalInfo != nil {
		pr := *upd.ProfessionalInfo
		pr.Skills = normalize.StringSlice(pr.Skills)
		set["professional_info"] = pr
	}
	if upd.MembershipInfo != nil {
		set["membership_info"] = *upd.MembershipInfo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.Member
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"personal_info.email": normalize.Email(email)},
		bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &m, nil
}

// SetVisibility sets is_visible to the explicit value (not a flip) and
// returns the updated member. Setting the same value twice is a no-op.
func (s *Store) SetVisibility(ctx context.Context, email string, visible bool) (*models.Member, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.Member
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"personal_info.email": normalize.Email(email)},
		bson.M{"$set": bson.M{
			"is_visible": visible,
			"updated_at": time.Now().UTC(),
		}}, opts).Decode(&m)
	if err != nil {
		if wafflemongo.IsDup(err) {
			// unhiding would collide with a visible member holding this email
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &m, nil
}

// DeleteByEmail permanently removes the member (no tombstone).
// Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"personal_info.email": normalize.Email(email)})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Stats holds member counts by type among visible members.
type Stats struct {
	Total  int64 `json:"total"`
	Core   int64 `json:"core"`
	Active int64 `json:"active"`
	Alumni int64 `json:"alumni"`
}

// StatsByType counts visible members per member type.
func (s *Store) StatsByType(ctx context.Context) (Stats, error) {
	var st Stats
	var err error

	if st.Total, err = s.c.CountDocuments(ctx, bson.M{"is_visible": true}); err != nil {
		return Stats{}, err
	}
	byType := func(t string) (int64, error) {
		return s.c.CountDocuments(ctx, bson.M{
			"is_visible":                  true,
			"membership_info.member_type": t,
		})
	}
	if st.Core, err = byType(models.MemberTypeCore); err != nil {
		return Stats{}, err
	}
	if st.Active, err = byType(models.MemberTypeActive); err != nil {
		return Stats{}, err
	}
	if st.Alumni, err = byType(models.MemberTypeAlumni); err != nil {
		return Stats{}, err
	}
	return st, nil
}

// CountAll returns total and visible member counts for the admin overview.
func (s *Store) CountAll(ctx context.Context) (total, visible int64, err error) {
	if total, err = s.c.CountDocuments(ctx, bson.M{}); err != nil {
		return 0, 0, err
	}
	if visible, err = s.c.CountDocuments(ctx, bson.M{"is_visible": true}); err != nil {
		return 0, 0, err
	}
	return total, visible, nil
}
