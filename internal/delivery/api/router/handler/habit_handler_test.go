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

func TestHabitHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		habitID := uuid.New()
		s.habitUC.EXPECT().CreateHabit(mock.Anything, s.userID, &usecase.CreateHabitInput{Name: "Read", Description: "20 pages"}).
			Return(&entity.Habit{ID: habitID, UserID: s.userID, Name: "Read", Description: "20 pages"}, nil)

		rec, env := s.do(t, http.MethodPost, "/api/v1/habits", accessToken, `{"name":"Read","description":"20 pages"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, habitID, decodeData[entity.Habit](t, env).ID)
	})

	t.Run("name is required", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodPost, "/api/v1/habits", accessToken, `{"description":"no name"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(env.Error.Details), `"field":"name"`)
	})

	t.Run("requires authentication", func(t *testing.T) {
		s := newTestServer(t)

		rec, _ := s.do(t, http.MethodPost, "/api/v1/habits", "", `{"name":"Read"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHabitHandler_Read(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		s := newTestServer(t)
		s.habitUC.EXPECT().ListHabits(mock.Anything, s.userID).Return([]*entity.Habit{
			{ID: uuid.New(), UserID: s.userID, Name: "Read"},
			{ID: uuid.New(), UserID: s.userID, Name: "Run"},
		}, nil)

		rec, env := s.do(t, http.MethodGet, "/api/v1/habits", accessToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]entity.Habit](t, env), 2)
	})

	t.Run("malformed id", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodGet, "/api/v1/habits/not-a-uuid", accessToken, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
	})

	t.Run("someone else's habit", func(t *testing.T) {
		s := newTestServer(t)
		habitID := uuid.New()
		s.habitUC.EXPECT().GetHabit(mock.Anything, s.userID, habitID).Return(nil, domainerrors.ErrHabitOwnershipViolation)

		rec, env := s.do(t, http.MethodGet, "/api/v1/habits/"+habitID.String(), accessToken, "")

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "HABIT_OWNERSHIP_VIOLATION", env.Error.Code)
	})

	t.Run("missing habit", func(t *testing.T) {
		s := newTestServer(t)
		habitID := uuid.New()
		s.habitUC.EXPECT().GetHabit(mock.Anything, s.userID, habitID).
			Return(nil, domainerrors.ErrHabitNotFound.WrapMessage("get habit"))

		rec, _ := s.do(t, http.MethodGet, "/api/v1/habits/"+habitID.String(), accessToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHabitHandler_UpdateDelete(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		s := newTestServer(t)
		habitID := uuid.New()
		s.habitUC.EXPECT().UpdateHabit(mock.Anything, s.userID, habitID, mock.MatchedBy(func(in *usecase.UpdateHabitInput) bool {
			return in.Name != nil && *in.Name == "Read more" && in.Description == nil
		})).Return(&entity.Habit{ID: habitID, UserID: s.userID, Name: "Read more"}, nil)

		rec, env := s.do(t, http.MethodPut, "/api/v1/habits/"+habitID.String(), accessToken, `{"name":"Read more"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Read more", decodeData[entity.Habit](t, env).Name)
	})

	t.Run("delete", func(t *testing.T) {
		s := newTestServer(t)
		habitID := uuid.New()
		s.habitUC.EXPECT().DeleteHabit(mock.Anything, s.userID, habitID).Return(nil)

		rec, _ := s.do(t, http.MethodDelete, "/api/v1/habits/"+habitID.String(), accessToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
