package usecase

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
	"bus-depot-backend/internal/repository"
)

var (
	ErrAlreadyCheckedIn          = errors.New("driver has already checked in today")
	ErrAlreadyCheckedOut         = errors.New("driver has already checked out today")
	ErrNotCheckedIn              = errors.New("driver has not checked in today")
	ErrCannotReplaceAfterCheckIn = errors.New("driver has already checked in and cannot be replaced")
	ErrDuplicateSlot             = errors.New("attendance record already exists for this driver and date")
)

// AttendanceResult reports which row an operation landed on and whether it
// had to insert a new slot (201) or completed an existing one (200).
type AttendanceResult struct {
	AttendanceID uint
	Created      bool
}

// AttendanceUsecase drives the per-slot state machine:
// NONE -> CHECKED_IN -> CHECKED_OUT, with NONE -> REPLACED reachable only
// before check-in. Every operation runs as one transaction; the unique
// (driver_id, date) index turns a lost race into ErrDuplicateSlot.
type AttendanceUsecase struct {
	repo repository.AttendanceRepository
	loc  *time.Location
}

func NewAttendanceUsecase(repo repository.AttendanceRepository, loc *time.Location) *AttendanceUsecase {
	return &AttendanceUsecase{repo: repo, loc: loc}
}

func (u *AttendanceUsecase) today() (date, timestamp string) {
	now := time.Now().In(u.loc)
	return now.Format(model.DateLayout), now.Format(model.TimeLayout)
}

func (u *AttendanceUsecase) CheckIn(driverID string) (*AttendanceResult, error) {
	date, timestamp := u.today()

	var result AttendanceResult
	err := u.repo.Transaction(func(tx repository.AttendanceRepository) error {
		rec, err := tx.FindSlot(driverID, date)
		switch {
		case err == nil:
			if rec.CheckInTime != nil {
				return ErrAlreadyCheckedIn
			}
			rec.CheckInTime = &timestamp
			if err := tx.Update(rec); err != nil {
				return fmt.Errorf("update check-in: %w", err)
			}
			result = AttendanceResult{AttendanceID: rec.ID}
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			rec := &model.AttendanceRecord{
				DriverID:    driverID,
				Date:        date,
				CheckInTime: &timestamp,
			}
			if err := tx.Create(rec); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateSlot
				}
				return fmt.Errorf("insert check-in: %w", err)
			}
			result = AttendanceResult{AttendanceID: rec.ID, Created: true}
			return nil

		default:
			return fmt.Errorf("lookup slot: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (u *AttendanceUsecase) CheckOut(driverID string) (*AttendanceResult, error) {
	date, timestamp := u.today()

	var result AttendanceResult
	err := u.repo.Transaction(func(tx repository.AttendanceRepository) error {
		rec, err := tx.FindSlot(driverID, date)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotCheckedIn
		}
		if err != nil {
			return fmt.Errorf("lookup slot: %w", err)
		}
		if rec.CheckInTime == nil {
			// Replacement was booked but nobody checked in yet.
			return ErrNotCheckedIn
		}
		if rec.CheckOutTime != nil {
			return ErrAlreadyCheckedOut
		}
		rec.CheckOutTime = &timestamp
		if err := tx.Update(rec); err != nil {
			return fmt.Errorf("update check-out: %w", err)
		}
		result = AttendanceResult{AttendanceID: rec.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Replace assigns a stand-in to the original driver's slot. Allowed only
// while check_in_time is still null; the original driver_id stays on the
// record for audit.
func (u *AttendanceUsecase) Replace(originalDriverID, replacementDriverID string) (*AttendanceResult, error) {
	date, timestamp := u.today()

	var result AttendanceResult
	err := u.repo.Transaction(func(tx repository.AttendanceRepository) error {
		rec, err := tx.FindPrimary(originalDriverID, date)
		switch {
		case err == nil:
			if rec.CheckInTime != nil {
				return ErrCannotReplaceAfterCheckIn
			}
			rec.ReplacementDriverID = &replacementDriverID
			rec.ReplacedAt = &timestamp
			if err := tx.Update(rec); err != nil {
				return fmt.Errorf("update replacement: %w", err)
			}
			result = AttendanceResult{AttendanceID: rec.ID}
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			rec := &model.AttendanceRecord{
				DriverID:            originalDriverID,
				Date:                date,
				ReplacementDriverID: &replacementDriverID,
				ReplacedAt:          &timestamp,
			}
			if err := tx.Create(rec); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateSlot
				}
				return fmt.Errorf("insert replacement: %w", err)
			}
			result = AttendanceResult{AttendanceID: rec.ID, Created: true}
			return nil

		default:
			return fmt.Errorf("lookup slot: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Migrate bulk-reassigns driver_id for one date. It bypasses the state
// machine on purpose; depot admins use it to fix mis-entered rosters.
func (u *AttendanceUsecase) Migrate(oldDriverID, newDriverID, date string) (int64, error) {
	affected, err := u.repo.Migrate(oldDriverID, newDriverID, date)
	if err != nil {
		return 0, fmt.Errorf("migrate records: %w", err)
	}
	return affected, nil
}
