package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"joinme/internal/domain/constants"
	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/repository"
	"joinme/internal/domain/service"
	"joinme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	eventRepo   repository.EventRepository
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo   repository.EventRepository
	ProfileRepo repository.ProfileRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:   params.EventRepo,
		profileRepo: params.ProfileRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (s *eventService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, s.logger)
}

// ListCategories returns the known event categories
func (s *eventService) ListCategories() []entity.Category {
	return entity.Categories()
}

// FindAll returns every event
func (s *eventService) FindAll(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.eventRepo.FindAll(ctx, entity.EventFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	return events, nil
}

// FindByCategory returns events with exactly the given category
func (s *eventService) FindByCategory(ctx context.Context, code string) ([]*entity.Event, error) {
	category, err := CheckCategory(code)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindAll(ctx, entity.EventFilter{Category: category})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events by category")
	}

	return events, nil
}

// FindByName returns events with exactly the given name
func (s *eventService) FindByName(ctx context.Context, name string) ([]*entity.Event, error) {
	events, err := s.eventRepo.FindAll(ctx, entity.EventFilter{Name: name})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find events by name")
	}

	return events, nil
}

// FindByID returns a single event
func (s *eventService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return findEvent(ctx, s.eventRepo, id)
}

// Create persists a new event owned by the principal and notifies the owner's subscribers
func (s *eventService) Create(ctx context.Context, input *usecase.CreateEventInput, principal entity.Principal) (*entity.Event, error) {
	category, err := CheckCategory(input.Category)
	if err != nil {
		return nil, err
	}

	startTime, err := parseEventTime(input.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseEventTime(input.EndTime)
	if err != nil {
		return nil, err
	}
	if err := validateEventWindow(startTime, endTime); err != nil {
		return nil, err
	}

	event := &entity.Event{
		Lat:         input.Lat,
		Lng:         input.Lng,
		StartTime:   startTime,
		EndTime:     endTime,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Category:    category,
		UserID:      principal.UserID,
		Attendees:   []uuid.UUID{},
	}
	if err := validateLocation(event.Location()); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}
	if event.ID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrEventPersistFailed)
	}

	s.log(ctx).Info("Event created",
		slog.String("event_id", event.ID.String()),
		slog.String("user_id", principal.UserID.String()),
	)

	// The event stays persisted when the owner has no profile yet.
	owner, err := findProfile(ctx, s.profileRepo, principal.UserID)
	if err != nil {
		return nil, err
	}
	event.Owner = owner

	publishFanout(ctx, s.publisher, s.log(ctx), &service.FanoutEvent{
		Kind:         constants.FanoutKindEventCreated,
		EventID:      event.ID.String(),
		Subject:      fmt.Sprintf("New event from %s", owner.FullName()),
		Body:         fmt.Sprintf("%s created a new event called %s. Check it out at JoinMe.", owner.FullName(), event.Name),
		RecipientIDs: toRecipientIDs(owner.Subscribers),
	})

	return event, nil
}

// Update merges the supplied fields into an event owned by the principal and notifies its attendees
func (s *eventService) Update(ctx context.Context, input *usecase.UpdateEventInput, id uuid.UUID, principal entity.Principal) (*entity.Event, error) {
	event, err := findEvent(ctx, s.eventRepo, id)
	if err != nil {
		return nil, err
	}

	if !event.IsOwnedBy(principal.UserID) {
		return nil, errors.WithStack(domainerrors.ErrNotEventOwner)
	}

	previousName := event.Name
	audience := slices.Clone(event.Attendees)

	if err := applyEventUpdate(event, input); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		switch {
		case errors.Is(err, repository.ErrEventVersionConflict):
			return nil, errors.Wrap(domainerrors.ErrConflict, "event update lost a concurrent write")
		case errors.Is(err, repository.ErrEventNotFound):
			return nil, errors.WithStack(domainerrors.ErrEventNotFound)
		default:
			return nil, errors.Wrap(err, "failed to update event")
		}
	}

	owner, err := findProfile(ctx, s.profileRepo, principal.UserID)
	if err != nil {
		return nil, err
	}
	event.Owner = owner

	publishFanout(ctx, s.publisher, s.log(ctx), &service.FanoutEvent{
		Kind:         constants.FanoutKindEventUpdated,
		EventID:      event.ID.String(),
		Subject:      fmt.Sprintf("Event %s updated", previousName),
		Body:         fmt.Sprintf("%s updated the event %s. Check it out at JoinMe.", owner.FullName(), previousName),
		RecipientIDs: toRecipientIDs(audience),
	})

	return event, nil
}

// Delete hard-deletes an event owned by the principal
func (s *eventService) Delete(ctx context.Context, id uuid.UUID, principal entity.Principal) error {
	event, err := findEvent(ctx, s.eventRepo, id)
	if err != nil {
		return err
	}

	if !event.IsOwnedBy(principal.UserID) {
		return errors.WithStack(domainerrors.ErrNotEventOwner)
	}

	if err := s.eventRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return errors.WithStack(domainerrors.ErrEventNotFound)
		}

		return errors.Wrap(err, "failed to delete event")
	}

	s.log(ctx).Info("Event deleted", slog.String("event_id", id.String()))

	return nil
}

func findEvent(ctx context.Context, eventRepo repository.EventRepository, id uuid.UUID) (*entity.Event, error) {
	event, err := eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, errors.WithStack(domainerrors.ErrEventNotFound)
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

func applyEventUpdate(event *entity.Event, input *usecase.UpdateEventInput) error {
	if input.Category != nil {
		category, err := CheckCategory(*input.Category)
		if err != nil {
			return err
		}
		event.Category = category
	}
	if input.StartTime != nil {
		startTime, err := parseEventTime(*input.StartTime)
		if err != nil {
			return err
		}
		event.StartTime = startTime
	}
	if input.EndTime != nil {
		endTime, err := parseEventTime(*input.EndTime)
		if err != nil {
			return err
		}
		event.EndTime = endTime
	}
	if input.Lat != nil {
		event.Lat = *input.Lat
	}
	if input.Lng != nil {
		event.Lng = *input.Lng
	}
	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Address != nil {
		event.Address = *input.Address
	}

	if err := validateEventWindow(event.StartTime, event.EndTime); err != nil {
		return err
	}

	return validateLocation(event.Location())
}
