package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Event is a happening published by a user. UserID never changes after creation.
type Event struct {
	ID          uuid.UUID   `json:"id"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	StartTime   time.Time   `json:"start_time"`
	EndTime     time.Time   `json:"end_time"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Category    Category    `json:"category"`
	UserID      uuid.UUID   `json:"user_id"`
	Attendees   []uuid.UUID `json:"attendees"`
	Owner       *Profile    `json:"owner,omitempty"`
	Version     int64       `json:"version"`
}

// Location returns the event position as a lon/lat point.
func (e *Event) Location() orb.Point {
	return orb.Point{e.Lng, e.Lat}
}

// IsOwnedBy reports whether userID owns the event.
func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.UserID == userID
}

// HasAttendee reports whether userID is in the attendee set.
func (e *Event) HasAttendee(userID uuid.UUID) bool {
	return slices.Contains(e.Attendees, userID)
}

// EventFilter narrows FindAll to exact matches. Zero values are ignored.
type EventFilter struct {
	Category Category
	Name     string
}
