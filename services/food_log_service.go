package services

import (
	"errors"
	"time"

	"github.com/nevilhulspas/caltrack/models"

	"gorm.io/gorm"
)

// EntryStore is the persistence surface the handlers depend on.
type EntryStore interface {
	Insert(entry *models.FoodLog) error
	ListSince(user string, since time.Time) ([]models.FoodLog, error)
	SoftDelete(id string) error
	// MostRecentFor returns the newest non-deleted entry for the user,
	// or nil (no error) when the user has nothing to undo.
	MostRecentFor(user string) (*models.FoodLog, error)
}

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

func (s *FoodLogService) Insert(entry *models.FoodLog) error {
	return s.db.Create(entry).Error
}

func (s *FoodLogService) ListSince(user string, since time.Time) ([]models.FoodLog, error) {
	logs := make([]models.FoodLog, 0)
	q := s.db.
		Where("is_deleted = ?", false).
		Where("created_at >= ?", since).
		Order("created_at DESC")
	if user != "" {
		q = q.Where("user_name = ?", user)
	}
	err := q.Find(&logs).Error
	return logs, err
}

func (s *FoodLogService) SoftDelete(id string) error {
	// No rows matched is not an error: deletes are idempotent.
	return s.db.
		Model(&models.FoodLog{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *FoodLogService) MostRecentFor(user string) (*models.FoodLog, error) {
	var entry models.FoodLog
	err := s.db.
		Where("user_name = ? AND is_deleted = ?", user, false).
		Order("created_at DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
