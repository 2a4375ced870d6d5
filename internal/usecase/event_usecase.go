package usecase

import (
	"context"

	"joinme/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventInput carries a new event. Times are RFC 3339 strings.
type CreateEventInput struct {
	Lat         float64
	Lng         float64
	StartTime   string
	EndTime     string
	Name        string
	Description string
	Address     string
	Category    string
}

// UpdateEventInput is a partial update; nil fields keep their stored value.
type UpdateEventInput struct {
	Lat         *float64
	Lng         *float64
	StartTime   *string
	EndTime     *string
	Name        *string
	Description *string
	Address     *string
	Category    *string
}

// EventUsecase manages the event lifecycle.
type EventUsecase interface {
	FindAll(ctx context.Context) ([]*entity.Event, error)
	FindByCategory(ctx context.Context, code string) ([]*entity.Event, error)
	FindByName(ctx context.Context, name string) ([]*entity.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	Create(ctx context.Context, input *CreateEventInput, principal entity.Principal) (*entity.Event, error)
	Update(ctx context.Context, input *UpdateEventInput, id uuid.UUID, principal entity.Principal) (*entity.Event, error)
	Delete(ctx context.Context, id uuid.UUID, principal entity.Principal) error
	ListCategories() []entity.Category
}

// AttendanceUsecase manages the attendee set of events.
type AttendanceUsecase interface {
	// Attend rejects a second attend by the same user.
	Attend(ctx context.Context, id uuid.UUID, principal entity.Principal) (*entity.Event, error)
	// Unattend succeeds whether or not the user was attending.
	Unattend(ctx context.Context, id uuid.UUID, principal entity.Principal) (*entity.Event, error)
}
