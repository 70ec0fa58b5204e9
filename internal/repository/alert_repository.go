package repository

import (
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
)

type AlertRepository interface {
	Create(alert *model.Alert) error
	// GetAllDesc returns the whole feed, most recent first.
	GetAllDesc() ([]model.Alert, error)
	// GetByDate returns alerts whose timestamp falls on the given
	// YYYY-MM-DD day.
	GetByDate(date string) ([]model.Alert, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db}
}

func (r *alertRepository) Create(alert *model.Alert) error {
	return r.db.Create(alert).Error
}

func (r *alertRepository) GetAllDesc() ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.Order("time desc").Find(&alerts).Error
	return alerts, err
}

func (r *alertRepository) GetByDate(date string) ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.Where("time LIKE ?", date+"%").Find(&alerts).Error
	return alerts, err
}
