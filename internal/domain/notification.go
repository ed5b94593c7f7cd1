package domain

import "time"

type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is the outcome of a simulated admin action. It is what the
// dashboard shows as a toast; nothing in the catalog changes.
type Notification struct {
	ID          string              `json:"id"`
	Action      string              `json:"action"`
	Subject     string              `json:"subject"`
	SubjectID   string              `json:"subjectId,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Activity is one entry of the dashboard's recent activity feed.
type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar,omitempty"`
	At          time.Time `json:"at"`
}
