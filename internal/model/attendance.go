package model

// AttendanceRecord is one slot: a driver (or their replacement) on one
// calendar date. The unique index makes a concurrent double check-in fail
// on insert instead of creating a second row for the slot.
type AttendanceRecord struct {
	ID                  uint    `json:"id" gorm:"primaryKey"`
	DriverID            string  `json:"driver_id" gorm:"size:64;uniqueIndex:idx_driver_date"`
	Date                string  `json:"date" gorm:"size:10;uniqueIndex:idx_driver_date"` // YYYY-MM-DD
	CheckInTime         *string `json:"check_in_time" gorm:"size:19"`                    // YYYY-MM-DD HH:MM:SS
	CheckOutTime        *string `json:"check_out_time" gorm:"size:19"`
	ReplacementDriverID *string `json:"replacement_driver_id" gorm:"size:64"`
	ReplacedAt          *string `json:"replaced_at" gorm:"size:19"`
}
