package repository

import (
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
)

type ScheduleRepository interface {
	GetCrews() ([]model.Crew, error)
	GetEntries(date string) ([]model.ScheduleEntry, error)
	EntryExists(date string, busID uint, shiftTime string, routeID uint) (bool, error)
	CreateEntry(entry *model.ScheduleEntry) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db}
}

func (r *scheduleRepository) GetCrews() ([]model.Crew, error) {
	var crews []model.Crew
	err := r.db.Find(&crews).Error
	return crews, err
}

func (r *scheduleRepository) GetEntries(date string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.Where("schedule_date = ?", date).
		Order("shift_time, route_id").
		Find(&entries).Error
	return entries, err
}

func (r *scheduleRepository) EntryExists(date string, busID uint, shiftTime string, routeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ScheduleEntry{}).
		Where("schedule_date = ? AND bus_id = ? AND shift_time = ? AND route_id = ?",
			date, busID, shiftTime, routeID).
		Count(&count).Error
	return count > 0, err
}

func (r *scheduleRepository) CreateEntry(entry *model.ScheduleEntry) error {
	return r.db.Create(entry).Error
}
