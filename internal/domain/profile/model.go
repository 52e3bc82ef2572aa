package profile

import (
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/domain/subscription"
)

// Profile is the account record held in the profile store. Only the fields
// the subscription core reads are modeled here; the store owns the rest of
// the document.
type Profile struct {
	ID    string `json:"id" bson:"_id"`
	Email string `json:"email" bson:"email"`
	Name  string `json:"name" bson:"name"`

	// Subscription is the embedded enrollment state; nil until the account
	// is observed by the subscription core for the first time
	Subscription *subscription.Subscription `json:"subscription,omitempty" bson:"subscription,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

// Activity is an audit log entry recorded against an account
type Activity struct {
	ID         string         `json:"id" bson:"_id"`
	AccountID  string         `json:"account_id" bson:"accountId"`
	EventType  string         `json:"event_type" bson:"eventType"`
	EntityType string         `json:"entity_type" bson:"entityType"`
	EntityID   string         `json:"entity_id" bson:"entityId"`
	Metadata   map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at" bson:"createdAt"`
}

// Notification is a user-facing message created in the profile store
type Notification struct {
	ID        string         `json:"id" bson:"_id"`
	AccountID string         `json:"account_id" bson:"accountId"`
	Type      string         `json:"type" bson:"type"`
	Title     string         `json:"title" bson:"title"`
	Message   string         `json:"message" bson:"message"`
	Metadata  map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Read      bool           `json:"read" bson:"read"`
	CreatedAt time.Time      `json:"created_at" bson:"createdAt"`
}
