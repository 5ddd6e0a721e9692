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

func TestRecordHandler_Create(t *testing.T) {
	habitID := uuid.New()
	path := "/api/v1/habits/" + habitID.String() + "/records"

	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		s.recordUC.EXPECT().CreateRecord(mock.Anything, s.userID, habitID, &usecase.CreateRecordInput{
			Date: entity.NewDate(2024, 6, 3), Status: false,
		}).Return(&entity.HabitRecord{ID: uuid.New(), HabitID: habitID, Date: entity.NewDate(2024, 6, 3)}, nil)

		rec, env := s.do(t, http.MethodPost, path, accessToken, `{"date":"2024-06-03","status":false}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, entity.NewDate(2024, 6, 3), decodeData[entity.HabitRecord](t, env).Date)
	})

	t.Run("same day twice conflicts", func(t *testing.T) {
		s := newTestServer(t)
		s.recordUC.EXPECT().CreateRecord(mock.Anything, s.userID, habitID, mock.Anything).
			Return(nil, domainerrors.ErrHabitRecordAlreadyExists.WrapMessage("create record"))

		rec, env := s.do(t, http.MethodPost, path, accessToken, `{"date":"2024-06-03","status":true}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "HABIT_RECORD_ALREADY_EXISTS", env.Error.Code)
	})

	t.Run("status is required", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodPost, path, accessToken, `{"date":"2024-06-03"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(env.Error.Details), `"field":"status"`)
	})

	t.Run("date must be a calendar day", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodPost, path, accessToken, `{"date":"2024-02-30","status":true}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(env.Error.Details), `"rule":"isodate"`)
	})
}

func TestRecordHandler_List(t *testing.T) {
	habitID := uuid.New()
	path := "/api/v1/habits/" + habitID.String() + "/records"

	t.Run("passes the inclusive range", func(t *testing.T) {
		s := newTestServer(t)
		s.recordUC.EXPECT().ListRecords(mock.Anything, s.userID, habitID, entity.NewDate(2024, 6, 1), entity.NewDate(2024, 6, 30)).
			Return([]*entity.HabitRecord{
				{ID: uuid.New(), HabitID: habitID, Date: entity.NewDate(2024, 6, 1), Status: true},
				{ID: uuid.New(), HabitID: habitID, Date: entity.NewDate(2024, 6, 2), Status: true},
			}, nil)

		rec, env := s.do(t, http.MethodGet, path+"?start=2024-06-01&end=2024-06-30", accessToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeData[[]entity.HabitRecord](t, env)
		require.Len(t, records, 2)
		assert.True(t, records[0].Date.Before(records[1].Date))
	})

	t.Run("range is required", func(t *testing.T) {
		s := newTestServer(t)

		rec, _ := s.do(t, http.MethodGet, path+"?end=2024-06-30", accessToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reversed range", func(t *testing.T) {
		s := newTestServer(t)
		s.recordUC.EXPECT().ListRecords(mock.Anything, s.userID, habitID, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidDateRange)

		rec, env := s.do(t, http.MethodGet, path+"?start=2024-06-30&end=2024-06-01", accessToken, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_DATE_RANGE", env.Error.Code)
	})
}

func TestRecordHandler_UpdateDelete(t *testing.T) {
	habitID, recordID := uuid.New(), uuid.New()
	path := "/api/v1/habits/" + habitID.String() + "/records/" + recordID.String()

	t.Run("update status only", func(t *testing.T) {
		s := newTestServer(t)
		s.recordUC.EXPECT().UpdateRecord(mock.Anything, s.userID, habitID, recordID, mock.MatchedBy(func(in *usecase.UpdateRecordInput) bool {
			return in.Date == nil && in.Status != nil && *in.Status
		})).Return(&entity.HabitRecord{ID: recordID, HabitID: habitID, Status: true}, nil)

		rec, _ := s.do(t, http.MethodPut, path, accessToken, `{"status":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update date", func(t *testing.T) {
		s := newTestServer(t)
		s.recordUC.EXPECT().UpdateRecord(mock.Anything, s.userID, habitID, recordID, mock.MatchedBy(func(in *usecase.UpdateRecordInput) bool {
			return in.Date != nil && *in.Date == entity.NewDate(2024, 6, 4) && in.Status == nil
		})).Return(&entity.HabitRecord{ID: recordID, HabitID: habitID, Date: entity.NewDate(2024, 6, 4)}, nil)

		rec, _ := s.do(t, http.MethodPut, path, accessToken, `{"date":"2024-06-04"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete missing record", func(t *testing.T) {
		s := newTestServer(t)
		s.recordUC.EXPECT().DeleteRecord(mock.Anything, s.userID, habitID, recordID).Return(domainerrors.ErrHabitRecordNotFound)

		rec, _ := s.do(t, http.MethodDelete, path, accessToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
