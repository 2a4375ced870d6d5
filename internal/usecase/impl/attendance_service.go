package impl

import (
	"context"
	"log/slog"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/repository"
	"joinme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type attendanceService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(eventRepo repository.EventRepository, logger *slog.Logger) usecase.AttendanceUsecase {
	return &attendanceService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Attend adds the principal to the attendee set. A second attend is rejected.
func (s *attendanceService) Attend(ctx context.Context, id uuid.UUID, principal entity.Principal) (*entity.Event, error) {
	event, err := findEvent(ctx, s.eventRepo, id)
	if err != nil {
		return nil, err
	}

	if event.HasAttendee(principal.UserID) {
		return nil, errors.WithStack(domainerrors.ErrAlreadyAttending)
	}

	if err := s.eventRepo.AddAttendee(ctx, id, principal.UserID); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyAttending):
			return nil, errors.WithStack(domainerrors.ErrAlreadyAttending)
		case errors.Is(err, repository.ErrDanglingMember):
			// Event still present means the principal's user row is the missing one.
			if _, err := findEvent(ctx, s.eventRepo, id); err != nil {
				return nil, err
			}

			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		default:
			return nil, errors.Wrap(err, "failed to add attendee")
		}
	}

	requestLogger(ctx, s.logger).Debug("Attendee added",
		slog.String("event_id", id.String()),
		slog.String("user_id", principal.UserID.String()),
	)

	return findEvent(ctx, s.eventRepo, id)
}

// Unattend removes the principal from the attendee set. Removing an absent member is a no-op.
func (s *attendanceService) Unattend(ctx context.Context, id uuid.UUID, principal entity.Principal) (*entity.Event, error) {
	if _, err := findEvent(ctx, s.eventRepo, id); err != nil {
		return nil, err
	}

	if err := s.eventRepo.RemoveAttendee(ctx, id, principal.UserID); err != nil {
		return nil, errors.Wrap(err, "failed to remove attendee")
	}

	return findEvent(ctx, s.eventRepo, id)
}
