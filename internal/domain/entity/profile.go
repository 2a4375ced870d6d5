package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Profile is the public face of a user. Its ID is the owning user's ID,
// so a user can hold at most one profile.
type Profile struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	ProfilePicture string      `json:"profile_picture"`
	Description    string      `json:"description"`
	ContactInfo    string      `json:"contact_info"`
	CreationDate   time.Time   `json:"creation_date"`
	UpdateDate     *time.Time  `json:"update_date,omitempty"`
	Subscribers    []uuid.UUID `json:"subscribers"`
	Version        int64       `json:"version"`
}

// FullName is the display name used in notification messages.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// IsOwnedBy reports whether userID owns the profile.
func (p *Profile) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// HasSubscriber reports whether userID is in the subscriber set.
func (p *Profile) HasSubscriber(userID uuid.UUID) bool {
	return slices.Contains(p.Subscribers, userID)
}
