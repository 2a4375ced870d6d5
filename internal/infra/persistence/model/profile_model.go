package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. ID equals UserID.
type ProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	ProfilePicture string    `gorm:"type:text"`
	Description    string    `gorm:"type:text"`
	ContactInfo    string    `gorm:"type:varchar(255)"`
	CreationDate   time.Time `gorm:"not null"`
	UpdateDate     *time.Time
	Version        int64 `gorm:"not null;default:1"`

	Subscribers []ProfileSubscriberModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ProfileSubscriberModel mirrors the 'profile_subscribers' join table.
// The composite primary key makes each membership unique.
type ProfileSubscriberModel struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileSubscriberModel) TableName() string {
	return "profile_subscribers"
}
