// Package model contains the GORM persistence models. The types are exported so
// the gorm/gen generator in cmd/gen can build typed queries from them.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// assignID fills an empty primary key with a time-ordered UUIDv7.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate uuid")
	}
	*id = generated

	return nil
}

// All lists every model for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&HabitModel{},
		&HabitRecordModel{},
		&GoalModel{},
		&NotificationModel{},
	}
}
