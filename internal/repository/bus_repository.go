package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bus-depot-backend/internal/model"
)

// BusStatus is the /api/buses row: a bus with its flag for one day.
type BusStatus struct {
	BusID     uint   `json:"bus_id"`
	Available string `json:"available"`
}

type BusRepository interface {
	GetAll() ([]model.Bus, error)
	// EnsureAvailability inserts a default "Yes" row for every bus that
	// has none on the given date.
	EnsureAvailability(date string) error
	GetStatuses(date string) ([]BusStatus, error)
	UpsertAvailability(busID uint, date, available string) error
	// GetAvailable returns buses flagged "Yes" on the given date.
	GetAvailable(date string) ([]model.Bus, error)
}

type busRepository struct {
	db *gorm.DB
}

func NewBusRepository(db *gorm.DB) BusRepository {
	return &busRepository{db}
}

func (r *busRepository) GetAll() ([]model.Bus, error) {
	var buses []model.Bus
	err := r.db.Find(&buses).Error
	return buses, err
}

func (r *busRepository) EnsureAvailability(date string) error {
	buses, err := r.GetAll()
	if err != nil {
		return err
	}
	for _, bus := range buses {
		row := model.BusAvailability{BusID: bus.BusID, Date: date, Available: "Yes"}
		if err := r.db.
			Where(model.BusAvailability{BusID: bus.BusID, Date: date}).
			Attrs(model.BusAvailability{Available: "Yes"}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *busRepository) GetStatuses(date string) ([]BusStatus, error) {
	var rows []BusStatus
	err := r.db.Table("buses").
		Select("buses.bus_id, bus_availabilities.available").
		Joins("JOIN bus_availabilities ON bus_availabilities.bus_id = buses.bus_id AND bus_availabilities.date = ?", date).
		Scan(&rows).Error
	return rows, err
}

func (r *busRepository) UpsertAvailability(busID uint, date, available string) error {
	row := model.BusAvailability{BusID: busID, Date: date, Available: available}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bus_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"available"}),
	}).Create(&row).Error
}

func (r *busRepository) GetAvailable(date string) ([]model.Bus, error) {
	var buses []model.Bus
	err := r.db.Table("buses").
		Select("buses.*").
		Joins("JOIN bus_availabilities ON bus_availabilities.bus_id = buses.bus_id").
		Where("bus_availabilities.available = ? AND bus_availabilities.date = ?", "Yes", date).
		Scan(&buses).Error
	return buses, err
}
