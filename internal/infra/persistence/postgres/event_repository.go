package postgres

import (
	"context"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/repository"
	"joinme/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (repo *eventRepository) withAttendees(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Attendees", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("user_id ASC")
	})
}

// FindAll returns events matching the filter, oldest first.
func (repo *eventRepository) FindAll(ctx context.Context, filter entity.EventFilter) ([]*entity.Event, error) {
	query := repo.withAttendees(ctx)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	var eventModels []*model.EventModel
	if err := query.Order("created_at ASC").Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	if err := repo.attachOwners(ctx, events); err != nil {
		return nil, err
	}

	return events, nil
}

// FindByID retrieves an event with its attendees and owner profile.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.withAttendees(ctx).Where("id = ?", id).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	event := toEventDomain(&eventM)
	if err := repo.attachOwners(ctx, []*entity.Event{event}); err != nil {
		return nil, err
	}

	return event, nil
}

// attachOwners loads the owning profiles of the events in one query.
// Events whose owner has no profile keep a nil Owner.
func (repo *eventRepository) attachOwners(ctx context.Context, events []*entity.Event) error {
	if len(events) == 0 {
		return nil
	}

	ownerIDs := make([]uuid.UUID, 0, len(events))
	seen := make(map[uuid.UUID]struct{}, len(events))
	for _, event := range events {
		if _, ok := seen[event.UserID]; ok {
			continue
		}
		seen[event.UserID] = struct{}{}
		ownerIDs = append(ownerIDs, event.UserID)
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Preload("Subscribers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC").Order("user_id ASC")
		}).
		Where("user_id IN ?", ownerIDs).
		Find(&profileModels).Error; err != nil {
		return errors.Wrap(err, "failed to load event owners")
	}

	owners := make(map[uuid.UUID]*entity.Profile, len(profileModels))
	for _, profileM := range profileModels {
		owners[profileM.UserID] = toProfileDomain(profileM)
	}

	for _, event := range events {
		event.Owner = owners[event.UserID]
	}

	return nil
}

// Create inserts the event row and copies the generated ID back onto the entity.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)
	eventM.Version = 1

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "event owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.Version = eventM.Version

	return nil
}

// Update writes the scalar fields guarded by the version column. UserID is never changed.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ? AND version = ?", event.ID, event.Version).
		Updates(map[string]any{
			"lat":         event.Lat,
			"lng":         event.Lng,
			"start_time":  event.StartTime,
			"end_time":    event.EndTime,
			"name":        event.Name,
			"description": event.Description,
			"address":     event.Address,
			"category":    event.Category.String(),
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update event")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.EventModel{}).Where("id = ?", event.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check event existence")
		}
		if count == 0 {
			return repository.ErrEventNotFound
		}

		return repository.ErrEventVersionConflict
	}
	event.Version++

	return nil
}

// AddAttendee inserts the membership row. An existing row reports ErrAlreadyAttending.
func (repo *eventRepository) AddAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.EventAttendeeModel{EventID: eventID, UserID: userID})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDanglingMember
		}

		return errors.Wrap(result.Error, "failed to add attendee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlreadyAttending
	}

	return nil
}

// RemoveAttendee deletes the membership row if present.
func (repo *eventRepository) RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.EventAttendeeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove attendee")
	}

	return nil
}

// DeleteByID removes the attendee rows and then the event in one transaction.
func (repo *eventRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&model.EventAttendeeModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete attendees")
		}

		result := tx.Where("id = ?", id).Delete(&model.EventModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete event")
		}
		if result.RowsAffected == 0 {
			return repository.ErrEventNotFound
		}

		return nil
	})
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	attendees := make([]uuid.UUID, 0, len(data.Attendees))
	for _, attendee := range data.Attendees {
		attendees = append(attendees, attendee.UserID)
	}

	return &entity.Event{
		ID:          data.ID,
		Lat:         data.Lat,
		Lng:         data.Lng,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Category:    entity.Category(data.Category),
		UserID:      data.UserID,
		Attendees:   attendees,
		Version:     data.Version,
	}
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	return &model.EventModel{
		ID:          data.ID,
		Lat:         data.Lat,
		Lng:         data.Lng,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		Name:        data.Name,
		Description: data.Description,
		Address:     data.Address,
		Category:    data.Category.String(),
		UserID:      data.UserID,
		Version:     data.Version,
	}
}
