package repository

import (
	"context"
	"errors"

	"joinme/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrEventNotFound is returned when no event matches the given ID.
	ErrEventNotFound = errors.New("event not found")
	// ErrEventVersionConflict is returned when an update lost a race with another writer.
	ErrEventVersionConflict = errors.New("event was modified concurrently")
	// ErrAlreadyAttending is returned when the attendee row already exists.
	ErrAlreadyAttending = errors.New("user already attends event")
	// ErrDanglingMember is returned by AddAttendee and AddSubscriber when the
	// membership row points at a parent or user row that no longer exists.
	ErrDanglingMember = errors.New("membership references a missing row")
)

// EventRepository persists events and their attendee sets.
// Every read returns events with Attendees and Owner populated.
type EventRepository interface {
	// FindAll returns events matching the filter, oldest first.
	FindAll(ctx context.Context, filter entity.EventFilter) ([]*entity.Event, error)

	// FindByID returns ErrEventNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// Create inserts the event, filling in ID and Version.
	Create(ctx context.Context, event *entity.Event) error

	// Update writes scalar fields when event.Version still matches storage and bumps Version.
	Update(ctx context.Context, event *entity.Event) error

	// AddAttendee inserts the membership row; ErrAlreadyAttending when it exists,
	// ErrDanglingMember when the event or the user is gone.
	AddAttendee(ctx context.Context, eventID, userID uuid.UUID) error

	// RemoveAttendee deletes the membership row. Absence is not an error.
	RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error

	// DeleteByID hard-deletes the event together with its attendee rows.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
