package mocks

import (
	"context"
	"time"

	"snaccscore/internal/cache"
	"snaccscore/internal/models"
	"snaccscore/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) Upsert(record *models.ScoreRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockScoreRepository) FindByUserRefAndDate(userRef string, date time.Time) (*models.ScoreRecord, error) {
	args := m.Called(userRef, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScoreRecord), args.Error(1)
}

func (m *MockScoreRepository) FindByUserRefAndDateRange(userRef string, startDate, endDate time.Time) ([]models.ScoreRecord, error) {
	args := m.Called(userRef, startDate, endDate)
	return args.Get(0).([]models.ScoreRecord), args.Error(1)
}

func (m *MockScoreRepository) DeleteByUserRefAndDate(userRef string, date time.Time) error {
	args := m.Called(userRef, date)
	return args.Error(0)
}

type MockWeeklyCache struct {
	mock.Mock
}

func (m *MockWeeklyCache) UserVersion(ctx context.Context, userRef string) (int64, error) {
	args := m.Called(ctx, userRef)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWeeklyCache) GetWeekly(ctx context.Context, userRef, asOf string, version int64) (*cache.WeeklyEntry, bool, error) {
	args := m.Called(ctx, userRef, asOf, version)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*cache.WeeklyEntry), args.Bool(1), args.Error(2)
}

func (m *MockWeeklyCache) StoreWeekly(ctx context.Context, userRef, asOf string, version int64, entry cache.WeeklyEntry) error {
	args := m.Called(ctx, userRef, asOf, version, entry)
	return args.Error(0)
}

func (m *MockWeeklyCache) InvalidateUser(ctx context.Context, userRef string) error {
	args := m.Called(ctx, userRef)
	return args.Error(0)
}

var (
	_ repository.ScoreRepository = (*MockScoreRepository)(nil)
	_ cache.WeeklyCache          = (*MockWeeklyCache)(nil)
)
