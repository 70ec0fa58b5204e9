package repository

import (
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
)

type AttendanceRepository interface {
	// Transaction runs fn against a repository bound to a single database
	// transaction. The state machine in the usecase layer wraps every
	// read-then-write in one of these.
	Transaction(fn func(AttendanceRepository) error) error

	// FindSlot matches today's record where the queried driver is either
	// the original or the replacement, so a stand-in can check in and out
	// against the original slot.
	FindSlot(driverID, date string) (*model.AttendanceRecord, error)

	// FindPrimary matches on driver_id only (replacement flow).
	FindPrimary(driverID, date string) (*model.AttendanceRecord, error)

	Create(rec *model.AttendanceRecord) error
	Update(rec *model.AttendanceRecord) error

	// Migrate reassigns driver_id wholesale for one date and reports rows
	// touched. Administrative correction only.
	Migrate(oldDriverID, newDriverID, date string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Transaction(fn func(AttendanceRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&attendanceRepository{tx})
	})
}

func (r *attendanceRepository) FindSlot(driverID, date string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.Where("date = ? AND (driver_id = ? OR replacement_driver_id = ?)", date, driverID, driverID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepository) FindPrimary(driverID, date string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.Where("date = ? AND driver_id = ?", date, driverID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepository) Create(rec *model.AttendanceRecord) error {
	return r.db.Create(rec).Error
}

func (r *attendanceRepository) Update(rec *model.AttendanceRecord) error {
	return r.db.Save(rec).Error
}

func (r *attendanceRepository) Migrate(oldDriverID, newDriverID, date string) (int64, error) {
	res := r.db.Model(&model.AttendanceRecord{}).
		Where("driver_id = ? AND date = ?", oldDriverID, date).
		Update("driver_id", newDriverID)
	return res.RowsAffected, res.Error
}
