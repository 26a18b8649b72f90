// internal/domain/models/message.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact message statuses, advanced by admins as messages are handled.
const (
	MessageNew     = "new"
	MessageRead    = "read"
	MessageReplied = "replied"
)

// MessageStatuses lists the valid values for ContactMessage.Status.
var MessageStatuses = []string{MessageNew, MessageRead, MessageReplied}

// ContactMessage is one submission from the public contact form.
// Messages are never deleted; admins move Status through new → read → replied
// (any order is accepted, only enum membership is checked).
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
	Status  string             `bson:"status" json:"status"` // new | read | replied

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
