package usecase

import (
	"context"

	"habitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecordInput logs the outcome of one day.
type CreateRecordInput struct {
	Date   entity.Date
	Status bool
}

// UpdateRecordInput holds the optional fields of a record update.
type UpdateRecordInput struct {
	Date   *entity.Date
	Status *bool
}

// RecordUsecase manages the daily completion records of a habit.
type RecordUsecase interface {
	// CreateRecord fails with a conflict when the habit already has a record for the date.
	CreateRecord(ctx context.Context, userID, habitID uuid.UUID, input *CreateRecordInput) (*entity.HabitRecord, error)

	// ListRecords returns the records with start <= date <= end, ascending by date.
	ListRecords(ctx context.Context, userID, habitID uuid.UUID, start, end entity.Date) ([]*entity.HabitRecord, error)

	UpdateRecord(ctx context.Context, userID, habitID, recordID uuid.UUID, input *UpdateRecordInput) (*entity.HabitRecord, error)
	DeleteRecord(ctx context.Context, userID, habitID, recordID uuid.UUID) error
}
