package subscriptions

import (
	"time"

	"gorm.io/gorm"
)

// Store answers the one question the access evaluator asks: does this owner
// hold a subscription that is active right now.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) HasActive(ownerType string, ownerID uint) (bool, error) {
	var sub Subscription
	err := s.DB.
		Where("owner_type = ? AND owner_id = ? AND status = ? AND end_date > ?",
			ownerType, ownerID, StatusActive, time.Now()).
		Order("end_date DESC").
		First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
