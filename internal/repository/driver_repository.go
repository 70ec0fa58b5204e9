package repository

import (
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
)

type DriverRepository interface {
	GetRegular() ([]model.Driver, error)
	GetByID(driverID string) (*model.Driver, error)
}

type driverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db}
}

func (r *driverRepository) GetRegular() ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.Where("job_type = ?", "regular").Find(&drivers).Error
	return drivers, err
}

func (r *driverRepository) GetByID(driverID string) (*model.Driver, error) {
	var driver model.Driver
	err := r.db.Where("driver_id = ?", driverID).First(&driver).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}
