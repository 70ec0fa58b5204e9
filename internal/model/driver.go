package model

// Driver is immutable reference data; nothing in this system writes it
// outside the seeder.
type Driver struct {
	DriverID   string `json:"driver_id" gorm:"primaryKey;size:64"`
	Name       string `json:"name"`
	PictureURL string `json:"picture_url"`
	JobType    string `json:"job_type" gorm:"size:16;default:regular"` // regular / spare
}
