// internal/domain/models/announcement.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement types.
const (
	AnnouncementEvent       = "Event"
	AnnouncementWorkshop    = "Workshop"
	AnnouncementAchievement = "Achievement"
	AnnouncementGeneral     = "General"
	AnnouncementUrgent      = "Urgent"
)

// AnnouncementTypes lists the valid values for Announcement.Type.
var AnnouncementTypes = []string{
	AnnouncementEvent,
	AnnouncementWorkshop,
	AnnouncementAchievement,
	AnnouncementGeneral,
	AnnouncementUrgent,
}

// Announcement priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Priorities lists the valid values for Announcement.Priority.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// PriorityRank maps a priority to its sort weight. Higher priority always
// sorts before lower regardless of recency, so the rank is stored on the
// document and the default sort is {priority_rank: -1, created_at: -1}.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Announcement is a club notice. IsActive hides it from the public listing
// without deleting it.
type Announcement struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type         string             `bson:"type" json:"type"`
	Title        string             `bson:"title" json:"title"`             // ≤ 200 chars
	TitleCI      string             `bson:"title_ci" json:"-"`              // lowercase, diacritics-stripped
	Description  string             `bson:"description" json:"description"` // ≤ 1000 chars
	Date         time.Time          `bson:"date" json:"date"`
	Time         string             `bson:"time,omitempty" json:"time,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Link         string             `bson:"link,omitempty" json:"link,omitempty"`
	Priority     string             `bson:"priority" json:"priority"` // low | medium | high
	PriorityRank int                `bson:"priority_rank" json:"-"`
	IsActive     bool               `bson:"is_active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
