package handler_test

import (
	"net/http"
	"testing"

	domainerrors "habitrack/internal/domain/errors"
	"habitrack/internal/domain/entity"
	"habitrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func goalWithProgress(habitID uuid.UUID, target, current int) *entity.GoalWithProgress {
	return &entity.GoalWithProgress{
		Goal: &entity.Goal{
			ID:          uuid.New(),
			HabitID:     habitID,
			TargetCount: target,
			StartDate:   entity.NewDate(2024, 6, 1),
			EndDate:     entity.NewDate(2024, 6, 30),
		},
		GoalProgress: entity.GoalProgress{CurrentCount: current, IsAchieved: current >= target},
	}
}

func TestGoalHandler_Create(t *testing.T) {
	habitID := uuid.New()
	path := "/api/v1/habits/" + habitID.String() + "/goals"

	t.Run("response merges progress", func(t *testing.T) {
		s := newTestServer(t)
		s.goalUC.EXPECT().CreateGoal(mock.Anything, s.userID, habitID, &usecase.CreateGoalInput{
			TargetCount: 3,
			StartDate:   entity.NewDate(2024, 6, 1),
			EndDate:     entity.NewDate(2024, 6, 30),
		}).Return(goalWithProgress(habitID, 3, 3), nil)

		rec, env := s.do(t, http.MethodPost, path, accessToken,
			`{"target_count":3,"start_date":"2024-06-01","end_date":"2024-06-30"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeData[map[string]any](t, env)
		assert.EqualValues(t, 3, body["target_count"])
		assert.EqualValues(t, 3, body["current_count"])
		assert.Equal(t, true, body["is_achieved"])
		assert.Equal(t, "2024-06-01", body["start_date"])
	})

	t.Run("target must be positive", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodPost, path, accessToken,
			`{"target_count":0,"start_date":"2024-06-01","end_date":"2024-06-30"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(env.Error.Details), `"field":"target_count"`)
	})

	t.Run("end before start", func(t *testing.T) {
		s := newTestServer(t)
		s.goalUC.EXPECT().CreateGoal(mock.Anything, s.userID, habitID, mock.Anything).
			Return(nil, domainerrors.ErrInvalidGoalWindow)

		rec, env := s.do(t, http.MethodPost, path, accessToken,
			`{"target_count":1,"start_date":"2024-06-30","end_date":"2024-06-01"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_GOAL_WINDOW", env.Error.Code)
	})
}

func TestGoalHandler_Read(t *testing.T) {
	habitID := uuid.New()

	t.Run("list evaluates every goal", func(t *testing.T) {
		s := newTestServer(t)
		s.goalUC.EXPECT().ListGoals(mock.Anything, s.userID, habitID).Return([]*entity.GoalWithProgress{
			goalWithProgress(habitID, 5, 2),
			goalWithProgress(habitID, 2, 2),
		}, nil)

		rec, env := s.do(t, http.MethodGet, "/api/v1/habits/"+habitID.String()+"/goals", accessToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		goals := decodeData[[]map[string]any](t, env)
		require.Len(t, goals, 2)
		assert.Equal(t, false, goals[0]["is_achieved"])
		assert.Equal(t, true, goals[1]["is_achieved"])
	})

	t.Run("get and delete", func(t *testing.T) {
		s := newTestServer(t)
		goal := goalWithProgress(habitID, 1, 0)
		path := "/api/v1/habits/" + habitID.String() + "/goals/" + goal.ID.String()
		s.goalUC.EXPECT().GetGoal(mock.Anything, s.userID, habitID, goal.ID).Return(goal, nil)
		s.goalUC.EXPECT().DeleteGoal(mock.Anything, s.userID, habitID, goal.ID).Return(nil)

		rec, _ := s.do(t, http.MethodGet, path, accessToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = s.do(t, http.MethodDelete, path, accessToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown goal", func(t *testing.T) {
		s := newTestServer(t)
		goalID := uuid.New()
		s.goalUC.EXPECT().GetGoal(mock.Anything, s.userID, habitID, goalID).Return(nil, domainerrors.ErrGoalNotFound)

		rec, _ := s.do(t, http.MethodGet, "/api/v1/habits/"+habitID.String()+"/goals/"+goalID.String(), accessToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
