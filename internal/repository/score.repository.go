package repository

import (
	"log"
	"time"

	"snaccscore/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository interface {
	Upsert(record *models.ScoreRecord) error
	FindByUserRefAndDate(userRef string, date time.Time) (*models.ScoreRecord, error)
	FindByUserRefAndDateRange(userRef string, startDate, endDate time.Time) ([]models.ScoreRecord, error)
	DeleteByUserRefAndDate(userRef string, date time.Time) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db}
}

// Upsert stores the record, replacing the score already kept for the same user and day.
func (r *scoreRepository) Upsert(record *models.ScoreRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_ref"}, {Name: "score_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(record).Error
}

func (r *scoreRepository) FindByUserRefAndDate(userRef string, date time.Time) (*models.ScoreRecord, error) {
	var record models.ScoreRecord
	err := r.db.Where("user_ref = ? AND score_date = ?", userRef, date).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *scoreRepository) FindByUserRefAndDateRange(userRef string, startDate, endDate time.Time) ([]models.ScoreRecord, error) {
	var records []models.ScoreRecord

	err := r.db.Where("user_ref = ? AND score_date BETWEEN ? AND ?", userRef, startDate, endDate).
		Order("score_date ASC").
		Find(&records).Error

	if err != nil {
		log.Printf("Error querying scores for %s: %v", userRef, err)
	}
	return records, err
}

// DeleteByUserRefAndDate returns gorm.ErrRecordNotFound when nothing was stored for that day.
func (r *scoreRepository) DeleteByUserRefAndDate(userRef string, date time.Time) error {
	result := r.db.Where("user_ref = ? AND score_date = ?", userRef, date).Delete(&models.ScoreRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
