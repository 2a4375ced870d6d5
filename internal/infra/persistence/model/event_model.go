package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Lat         float64   `gorm:"not null"`
	Lng         float64   `gorm:"not null"`
	StartTime   time.Time `gorm:"not null"`
	EndTime     time.Time `gorm:"not null"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"type:varchar(255)"`
	Category    string    `gorm:"type:varchar(32);not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Version     int64     `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Attendees []EventAttendeeModel `gorm:"foreignKey:EventID"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// BeforeCreate assigns the primary key.
func (m *EventModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}

// EventAttendeeModel mirrors the 'event_attendees' join table.
type EventAttendeeModel struct {
	EventID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventAttendeeModel) TableName() string {
	return "event_attendees"
}
