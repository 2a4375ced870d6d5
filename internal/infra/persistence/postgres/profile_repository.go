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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (repo *profileRepository) withSubscribers(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Subscribers", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("user_id ASC")
	})
}

// FindAll returns every profile with its subscribers.
func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.withSubscribers(ctx).Order("creation_date ASC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// FindByID retrieves a profile with its subscribers.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.withSubscribers(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// Create inserts the profile row. Subscribers are never written here.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	profileM.Version = 1

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.Version = profileM.Version

	return nil
}

// Update writes the scalar fields guarded by the version column.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ? AND version = ?", profile.ID, profile.Version).
		Updates(map[string]any{
			"first_name":      profile.FirstName,
			"last_name":       profile.LastName,
			"profile_picture": profile.ProfilePicture,
			"description":     profile.Description,
			"contact_info":    profile.ContactInfo,
			"update_date":     profile.UpdateDate,
			"version":         gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, profile.ID)
	}
	profile.Version++

	return nil
}

func (repo *profileRepository) missOrConflict(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check profile existence")
	}

	if count == 0 {
		return repository.ErrProfileNotFound
	}

	return repository.ErrProfileVersionConflict
}

// AddSubscriber inserts the membership row. An existing row reports ErrAlreadySubscribed.
func (repo *profileRepository) AddSubscriber(ctx context.Context, profileID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ProfileSubscriberModel{ProfileID: profileID, UserID: userID})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDanglingMember
		}

		return errors.Wrap(result.Error, "failed to add subscriber")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlreadySubscribed
	}

	return nil
}

// RemoveSubscriber deletes the membership row if present.
func (repo *profileRepository) RemoveSubscriber(ctx context.Context, profileID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND user_id = ?", profileID, userID).
		Delete(&model.ProfileSubscriberModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove subscriber")
	}

	return nil
}

// DeleteByID removes the subscriber rows and then the profile in one transaction.
func (repo *profileRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", id).Delete(&model.ProfileSubscriberModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete subscribers")
		}

		result := tx.Where("id = ?", id).Delete(&model.ProfileModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete profile")
		}
		if result.RowsAffected == 0 {
			return repository.ErrProfileNotFound
		}

		return nil
	})
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	subscribers := make([]uuid.UUID, 0, len(data.Subscribers))
	for _, sub := range data.Subscribers {
		subscribers = append(subscribers, sub.UserID)
	}

	return &entity.Profile{
		ID:             data.ID,
		UserID:         data.UserID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		ProfilePicture: data.ProfilePicture,
		Description:    data.Description,
		ContactInfo:    data.ContactInfo,
		CreationDate:   data.CreationDate,
		UpdateDate:     data.UpdateDate,
		Subscribers:    subscribers,
		Version:        data.Version,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:             data.ID,
		UserID:         data.UserID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		ProfilePicture: data.ProfilePicture,
		Description:    data.Description,
		ContactInfo:    data.ContactInfo,
		CreationDate:   data.CreationDate,
		UpdateDate:     data.UpdateDate,
		Version:        data.Version,
	}
}
