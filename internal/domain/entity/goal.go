package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a target number of completed days for a habit within an inclusive date window.
type Goal struct {
	ID          uuid.UUID `json:"id"`
	HabitID     uuid.UUID `json:"habit_id"`
	TargetCount int       `json:"target_count"`
	StartDate   Date      `json:"start_date"`
	EndDate     Date      `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// GoalProgress is the derived state of a goal. It is never stored.
type GoalProgress struct {
	CurrentCount int  `json:"current_count"`
	IsAchieved   bool `json:"is_achieved"`
}

// GoalWithProgress is a goal merged with its evaluated progress.
type GoalWithProgress struct {
	*Goal
	GoalProgress
}

// Contains reports whether d falls inside [StartDate, EndDate].
func (g *Goal) Contains(d Date) bool {
	return !d.Before(g.StartDate) && !d.After(g.EndDate)
}

// Evaluate counts the distinct in-window dates that have a completed record.
//
// Records outside the window and records with a false status are ignored, so
// callers may pass any superset of the window. Duplicate rows for the same date
// count once. Evaluate has no side effects and is safe for concurrent use.
func (g *Goal) Evaluate(records []*HabitRecord) GoalProgress {
	completed := make(map[Date]struct{}, len(records))
	for _, record := range records {
		if record == nil || !record.Status {
			continue
		}
		if !g.Contains(record.Date) {
			continue
		}
		completed[record.Date] = struct{}{}
	}

	count := len(completed)

	return GoalProgress{
		CurrentCount: count,
		IsAchieved:   count >= g.TargetCount,
	}
}

// WithProgress evaluates the goal and bundles the result.
func (g *Goal) WithProgress(records []*HabitRecord) *GoalWithProgress {
	return &GoalWithProgress{
		Goal:         g,
		GoalProgress: g.Evaluate(records),
	}
}
