package repository

import (
	"context"
	"errors"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for habit record persistence.
var (
	// ErrHabitRecordNotFound is returned when a record is not found.
	ErrHabitRecordNotFound = errors.New("habit record not found")
	// ErrDuplicateHabitRecord is returned when a record already exists for the habit and date.
	ErrDuplicateHabitRecord = errors.New("habit record already exists for date")
)

// HabitRecordRepository defines persistence for daily completion records.
type HabitRecordRepository interface {
	// Create inserts a record. A second record for the same habit and date yields ErrDuplicateHabitRecord.
	Create(ctx context.Context, record *entity.HabitRecord) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.HabitRecord, error)

	// FindByHabitAndDateRange returns records with start <= date <= end ordered by date ascending.
	FindByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, start, end entity.Date) ([]*entity.HabitRecord, error)

	Update(ctx context.Context, record *entity.HabitRecord) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByHabit removes every record of a habit.
	DeleteByHabit(ctx context.Context, habitID uuid.UUID) error
}
