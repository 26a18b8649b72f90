// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureMembers(ctx, db); err != nil {
		problems = append(problems, "members: "+err.Error())
	}
	if err := ensureApplications(ctx, db); err != nil {
		problems = append(problems, "team_applications: "+err.Error())
	}
	if err := ensureAnnouncements(ctx, db); err != nil {
		problems = append(problems, "announcements: "+err.Error())
	}
	if err := ensureMessages(ctx, db); err != nil {
		problems = append(problems, "contact_messages: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name string `bson:"name"`
	Key  bson.D `bson:"key"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	existing := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err == nil {
		defer cur.Close(ctx)
		for cur.Next(ctx) {
			var idx existingIndex
			if err := cur.Decode(&idx); err != nil {
				zap.L().Warn("failed to decode existing index",
					zap.String("collection", coll.Name()),
					zap.Error(err))
				continue
			}
			existing[keySig(idx.Key)] = idx
		}
	}

	var errs []string
	for _, m := range models {
		var desiredName string
		if m.Options != nil && m.Options.Name != nil {
			desiredName = *m.Options.Name
		}
		desiredSig := keySig(m.Keys.(bson.D))

		if ex, ok := existing[desiredSig]; ok {
			zap.L().Info("reusing existing index",
				zap.String("collection", coll.Name()),
				zap.String("name", ex.Name),
				zap.String("keys", desiredSig))
			continue
		}

		start := time.Now()
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isOptionsConflictErr(err) {
				zap.L().Warn("index exists with different options, leaving as-is",
					zap.String("collection", coll.Name()),
					zap.String("name", desiredName),
					zap.Error(err))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index created",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

/* -------------------------------------------------------------------------- */
/* Per-collection index sets                                                  */
/* -------------------------------------------------------------------------- */

// ensureMembers enforces visibility-scoped email uniqueness: the unique
// index is partial on is_visible=true, so hidden members may share an email
// and the check-then-insert race is closed at the storage layer.
func ensureMembers(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("members")
	return ensureIndexSet(ctx, coll, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "personal_info.email", Value: 1}},
			Options: &options.IndexOptions{
				Name:   strptr("uniq_visible_member_email"),
				Unique: boolptr(true),
				PartialFilterExpression: bson.M{
					"is_visible": true,
				},
			},
		},
		{
			Keys:    bson.D{{Key: "membership_info.join_date", Value: -1}},
			Options: &options.IndexOptions{Name: strptr("join_date_desc")},
		},
		{
			Keys:    bson.D{{Key: "membership_info.member_type", Value: 1}, {Key: "is_visible", Value: 1}},
			Options: &options.IndexOptions{Name: strptr("member_type_visible")},
		},
	})
}

// ensureApplications backs the one-application-per-email rule with a real
// unique constraint so concurrent submissions cannot both insert.
func ensureApplications(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("team_applications")
	return ensureIndexSet(ctx, coll, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "personal_info.email", Value: 1}},
			Options: &options.IndexOptions{
				Name:   strptr("uniq_application_email"),
				Unique: boolptr(true),
			},
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: &options.IndexOptions{Name: strptr("status_created_desc")},
		},
	})
}

func ensureAnnouncements(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("announcements")
	return ensureIndexSet(ctx, coll, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "priority_rank", Value: -1}, {Key: "created_at", Value: -1}},
			Options: &options.IndexOptions{Name: strptr("active_priority_created")},
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: &options.IndexOptions{Name: strptr("type")},
		},
	})
}

func ensureMessages(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("contact_messages")
	return ensureIndexSet(ctx, coll, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: &options.IndexOptions{Name: strptr("status_created_desc")},
		},
	})
}
