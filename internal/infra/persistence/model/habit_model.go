package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HabitModel mirrors the 'habits' table.
type HabitModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Records       []HabitRecordModel  `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
	Goals         []GoalModel         `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
	Notifications []NotificationModel `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (HabitModel) TableName() string {
	return "habits"
}

// BeforeCreate assigns the primary key.
func (m *HabitModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// HabitRecordModel mirrors the 'habit_records' table. One row per habit and calendar day.
type HabitRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_records_habit_date,priority:1"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_records_habit_date,priority:2"`
	Status    bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HabitRecordModel) TableName() string {
	return "habit_records"
}

// BeforeCreate assigns the primary key.
func (m *HabitRecordModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// GoalModel mirrors the 'goals' table.
type GoalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HabitID     uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetCount int       `gorm:"not null;check:chk_goals_target_count,target_count > 0"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoalModel) TableName() string {
	return "goals"
}

// BeforeCreate assigns the primary key.
func (m *GoalModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// NotificationModel mirrors the 'notifications' table. RemindAt holds "HH:MM".
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RemindAt  string    `gorm:"type:char(5);not null;index:idx_notifications_remind_at_enabled,priority:1"`
	Enabled   bool      `gorm:"not null;index:idx_notifications_remind_at_enabled,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// BeforeCreate assigns the primary key.
func (m *NotificationModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
