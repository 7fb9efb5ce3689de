package controllers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"snaccscore/internal/cache"
	"snaccscore/internal/mocks"
	"snaccscore/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func day(s string) time.Time {
	d, _ := time.Parse(models.DateLayout, s)
	return d
}

func setupHistoryControllerWithMock() (*gin.Engine, *mocks.MockScoreRepository, *mocks.MockWeeklyCache) {
	mockRepo := new(mocks.MockScoreRepository)
	mockCache := new(mocks.MockWeeklyCache)
	controller := NewHistoryController(mockRepo, mockCache, nil)
	controller.now = func() time.Time { return time.Date(2023, 1, 7, 15, 30, 0, 0, time.UTC) }

	router := setupTestRouter()
	router.POST("/history/scores", controller.RecordDailyScore)
	router.GET("/history/:user_ref/scores", controller.GetDailyScores)
	router.GET("/history/:user_ref/scores/:date", controller.GetDailyScore)
	router.DELETE("/history/:user_ref/scores/:date", controller.DeleteDailyScore)
	router.GET("/history/:user_ref/weekly", controller.GetWeeklyScore)
	return router, mockRepo, mockCache
}

func TestNewHistoryControllerDefaultsCache(t *testing.T) {
	controller := NewHistoryController(new(mocks.MockScoreRepository), nil, nil)
	assert.IsType(t, cache.NoopCache{}, controller.cache)
}

func TestRecordDailyScore(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockScoreRepository, *mocks.MockWeeklyCache)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful record",
			requestBody: map[string]interface{}{"user_ref": "user-1", "date": "2023-01-05", "score": 105.3},
			setupMock: func(r *mocks.MockScoreRepository, c *mocks.MockWeeklyCache) {
				r.On("Upsert", mock.MatchedBy(func(rec *models.ScoreRecord) bool {
					return rec.UserRef == "user-1" && rec.ScoreDate.Equal(day("2023-01-05")) && rec.Score == 105.3
				})).Return(nil)
				c.On("InvalidateUser", mock.Anything, "user-1").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Daily score recorded successfully",
		},
		{
			name:        "cache failure does not fail the request",
			requestBody: map[string]interface{}{"user_ref": "user-1", "date": "2023-01-05", "score": 0},
			setupMock: func(r *mocks.MockScoreRepository, c *mocks.MockWeeklyCache) {
				r.On("Upsert", mock.AnythingOfType("*models.ScoreRecord")).Return(nil)
				c.On("InvalidateUser", mock.Anything, "user-1").Return(errors.New("redis down"))
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Daily score recorded successfully",
		},
		{
			name:           "missing score",
			requestBody:    map[string]interface{}{"user_ref": "user-1", "date": "2023-01-05"},
			setupMock:      func(*mocks.MockScoreRepository, *mocks.MockWeeklyCache) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "bad date",
			requestBody:    map[string]interface{}{"user_ref": "user-1", "date": "05/01/2023", "score": 1},
			setupMock:      func(*mocks.MockScoreRepository, *mocks.MockWeeklyCache) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid date",
		},
		{
			name:        "repository error",
			requestBody: map[string]interface{}{"user_ref": "user-1", "date": "2023-01-05", "score": 1},
			setupMock: func(r *mocks.MockScoreRepository, c *mocks.MockWeeklyCache) {
				r.On("Upsert", mock.AnythingOfType("*models.ScoreRecord")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to record daily score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRepo, mockCache := setupHistoryControllerWithMock()
			tt.setupMock(mockRepo, mockCache)

			w, response := performJSON(router, "POST", "/history/scores", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMsg, response["message"])
			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}

func TestGetDailyScores(t *testing.T) {
	records := []models.ScoreRecord{
		{UserRef: "user-1", ScoreDate: day("2023-01-02"), Score: 90},
		{UserRef: "user-1", ScoreDate: day("2023-01-05"), Score: 110},
	}

	t.Run("defaults to the last seven days", func(t *testing.T) {
		router, mockRepo, _ := setupHistoryControllerWithMock()
		mockRepo.On("FindByUserRefAndDateRange", "user-1", day("2023-01-01"), day("2023-01-07")).Return(records, nil)

		w, response := performJSON(router, "GET", "/history/user-1/scores", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := response["data"].([]interface{})
		assert.Len(t, data, 2)
		assert.Equal(t, "2023-01-02", data[0].(map[string]interface{})["date"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit range", func(t *testing.T) {
		router, mockRepo, _ := setupHistoryControllerWithMock()
		mockRepo.On("FindByUserRefAndDateRange", "user-1", day("2022-12-01"), day("2022-12-31")).Return([]models.ScoreRecord{}, nil)

		w, response := performJSON(router, "GET", "/history/user-1/scores?from=2022-12-01&to=2022-12-31", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, response["data"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("from after to", func(t *testing.T) {
		router, _, _ := setupHistoryControllerWithMock()
		w, response := performJSON(router, "GET", "/history/user-1/scores?from=2023-02-01&to=2023-01-01", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid date range", response["message"])
	})

	t.Run("bad date", func(t *testing.T) {
		router, _, _ := setupHistoryControllerWithMock()
		w, response := performJSON(router, "GET", "/history/user-1/scores?to=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid date", response["message"])
	})

	t.Run("repository error", func(t *testing.T) {
		router, mockRepo, _ := setupHistoryControllerWithMock()
		mockRepo.On("FindByUserRefAndDateRange", "user-1", mock.Anything, mock.Anything).Return([]models.ScoreRecord(nil), errors.New("database error"))

		w, _ := performJSON(router, "GET", "/history/user-1/scores", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetDailyScore(t *testing.T) {
	router, mockRepo, _ := setupHistoryControllerWithMock()
	mockRepo.On("FindByUserRefAndDate", "user-1", day("2023-01-05")).Return(&models.ScoreRecord{UserRef: "user-1", ScoreDate: day("2023-01-05"), Score: 42}, nil)
	mockRepo.On("FindByUserRefAndDate", "user-1", day("2023-01-06")).Return(nil, gorm.ErrRecordNotFound)

	w, response := performJSON(router, "GET", "/history/user-1/scores/2023-01-05", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"date": "2023-01-05", "score": 42.0}, response["data"])

	w, response = performJSON(router, "GET", "/history/user-1/scores/2023-01-06", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Daily score not found", response["message"])

	w, _ = performJSON(router, "GET", "/history/user-1/scores/today", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockRepo.AssertExpectations(t)
}

func TestGetWeeklyScore(t *testing.T) {
	week := []models.ScoreRecord{
		{UserRef: "user-1", ScoreDate: day("2023-01-01"), Score: 100},
		{UserRef: "user-1", ScoreDate: day("2023-01-03"), Score: 110},
		{UserRef: "user-1", ScoreDate: day("2023-01-07"), Score: 120},
	}

	t.Run("computed and cached", func(t *testing.T) {
		router, mockRepo, mockCache := setupHistoryControllerWithMock()
		mockCache.On("UserVersion", mock.Anything, "user-1").Return(int64(2), nil)
		mockCache.On("GetWeekly", mock.Anything, "user-1", "2023-01-07", int64(2)).Return(nil, false, nil)
		mockRepo.On("FindByUserRefAndDateRange", "user-1", day("2023-01-01"), day("2023-01-07")).Return(week, nil)
		mockCache.On("StoreWeekly", mock.Anything, "user-1", "2023-01-07", int64(2), cache.WeeklyEntry{Score: 110, DaysCounted: 3}).Return(nil)

		w, response := performJSON(router, "GET", "/history/user-1/weekly", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := response["data"].(map[string]interface{})
		assert.InDelta(t, 110.0, data["score"], 1e-9)
		assert.Equal(t, 3.0, data["days_counted"])
		assert.Equal(t, false, data["cached"])
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("served from cache", func(t *testing.T) {
		router, mockRepo, mockCache := setupHistoryControllerWithMock()
		mockCache.On("UserVersion", mock.Anything, "user-1").Return(int64(0), nil)
		mockCache.On("GetWeekly", mock.Anything, "user-1", "2023-01-03", int64(0)).Return(&cache.WeeklyEntry{Score: 99, DaysCounted: 7}, true, nil)

		w, response := performJSON(router, "GET", "/history/user-1/weekly?as_of=2023-01-03", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := response["data"].(map[string]interface{})
		assert.InDelta(t, 99.0, data["score"], 1e-9)
		assert.Equal(t, true, data["cached"])
		mockRepo.AssertNotCalled(t, "FindByUserRefAndDateRange", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stores under the version read before the database", func(t *testing.T) {
		router, mockRepo, mockCache := setupHistoryControllerWithMock()
		versionCall := mockCache.On("UserVersion", mock.Anything, "user-1").Return(int64(4), nil).Once()
		getCall := mockCache.On("GetWeekly", mock.Anything, "user-1", "2023-01-07", int64(4)).Return(nil, false, nil).Once()
		findCall := mockRepo.On("FindByUserRefAndDateRange", "user-1", day("2023-01-01"), day("2023-01-07")).
			Return(week, nil).
			Run(func(mock.Arguments) {
				// a concurrent record lands after the read
				mockCache.On("UserVersion", mock.Anything, "user-1").Return(int64(5), nil)
			}).Once()
		storeCall := mockCache.On("StoreWeekly", mock.Anything, "user-1", "2023-01-07", int64(4), mock.Anything).Return(nil).Once()
		mock.InOrder(versionCall, getCall, findCall, storeCall)

		w, _ := performJSON(router, "GET", "/history/user-1/weekly", "")

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
		mockCache.AssertCalled(t, "StoreWeekly", mock.Anything, "user-1", "2023-01-07", int64(4), mock.Anything)
		mockCache.AssertNotCalled(t, "StoreWeekly", mock.Anything, "user-1", "2023-01-07", int64(5), mock.Anything)
	})

	t.Run("cache error falls back to the database", func(t *testing.T) {
		router, mockRepo, mockCache := setupHistoryControllerWithMock()
		mockCache.On("UserVersion", mock.Anything, "user-1").Return(int64(0), nil)
		mockCache.On("GetWeekly", mock.Anything, "user-1", "2023-01-07", int64(0)).Return(nil, false, errors.New("redis down"))
		mockRepo.On("FindByUserRefAndDateRange", "user-1", day("2023-01-01"), day("2023-01-07")).Return(week[:1], nil)
		mockCache.On("StoreWeekly", mock.Anything, "user-1", "2023-01-07", int64(0), mock.Anything).Return(errors.New("redis down"))

		w, response := performJSON(router, "GET", "/history/user-1/weekly", "")

		assert.Equal(t, http.StatusOK, w.Code)
		data := response["data"].(map[string]interface{})
		assert.InDelta(t, 100.0, data["score"], 1e-9)
	})

	t.Run("version error bypasses the cache", func(t *testing.T) {
		router, mockRepo, mockCache := setupHistoryControllerWithMock()
		mockCache.On("UserVersion", mock.Anything, "user-1").Return(int64(0), errors.New("redis down"))
		mockRepo.On("FindByUserRefAndDateRange", "user-1", day("2023-01-01"), day("2023-01-07")).Return(week, nil)

		w, response := performJSON(router, "GET", "/history/user-1/weekly", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.InDelta(t, 110.0, scoreOf(t, response), 1e-9)
		mockCache.AssertNotCalled(t, "GetWeekly", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockCache.AssertNotCalled(t, "StoreWeekly", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no scores in the week", func(t *testing.T) {
		router, mockRepo, mockCache := setupHistoryControllerWithMock()
		mockCache.On("UserVersion", mock.Anything, "user-1").Return(int64(0), nil)
		mockCache.On("GetWeekly", mock.Anything, "user-1", "2023-01-07", int64(0)).Return(nil, false, nil)
		mockRepo.On("FindByUserRefAndDateRange", "user-1", day("2023-01-01"), day("2023-01-07")).Return([]models.ScoreRecord{}, nil)

		w, response := performJSON(router, "GET", "/history/user-1/weekly", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No daily scores in this week", response["message"])
		mockCache.AssertNotCalled(t, "StoreWeekly", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stored scores overflow the mean", func(t *testing.T) {
		router, mockRepo, mockCache := setupHistoryControllerWithMock()
		mockCache.On("UserVersion", mock.Anything, "user-1").Return(int64(0), nil)
		mockCache.On("GetWeekly", mock.Anything, "user-1", "2023-01-07", int64(0)).Return(nil, false, nil)
		mockRepo.On("FindByUserRefAndDateRange", "user-1", day("2023-01-01"), day("2023-01-07")).Return([]models.ScoreRecord{
			{UserRef: "user-1", ScoreDate: day("2023-01-01"), Score: 1e308},
			{UserRef: "user-1", ScoreDate: day("2023-01-02"), Score: 1e308},
		}, nil)

		w, response := performJSON(router, "GET", "/history/user-1/weekly", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to calculate weekly score", response["message"])
		mockCache.AssertNotCalled(t, "StoreWeekly", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad as_of", func(t *testing.T) {
		router, _, _ := setupHistoryControllerWithMock()
		w, _ := performJSON(router, "GET", "/history/user-1/weekly?as_of=2023-13-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteDailyScore(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*mocks.MockScoreRepository, *mocks.MockWeeklyCache)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful deletion",
			path: "/history/user-1/scores/2023-01-05",
			setupMock: func(r *mocks.MockScoreRepository, c *mocks.MockWeeklyCache) {
				r.On("DeleteByUserRefAndDate", "user-1", day("2023-01-05")).Return(nil)
				c.On("InvalidateUser", mock.Anything, "user-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Daily score deleted successfully",
		},
		{
			name: "not found",
			path: "/history/user-1/scores/2023-01-05",
			setupMock: func(r *mocks.MockScoreRepository, c *mocks.MockWeeklyCache) {
				r.On("DeleteByUserRefAndDate", "user-1", day("2023-01-05")).Return(gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Daily score not found",
		},
		{
			name: "repository error",
			path: "/history/user-1/scores/2023-01-05",
			setupMock: func(r *mocks.MockScoreRepository, c *mocks.MockWeeklyCache) {
				r.On("DeleteByUserRefAndDate", "user-1", day("2023-01-05")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to delete daily score",
		},
		{
			name:           "bad date",
			path:           "/history/user-1/scores/2023-1-5",
			setupMock:      func(*mocks.MockScoreRepository, *mocks.MockWeeklyCache) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRepo, mockCache := setupHistoryControllerWithMock()
			tt.setupMock(mockRepo, mockCache)

			w, response := performJSON(router, "DELETE", tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMsg, response["message"])
			mockRepo.AssertExpectations(t)
			mockCache.AssertExpectations(t)
		})
	}
}
