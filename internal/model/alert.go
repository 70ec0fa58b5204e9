package model

// Alert is append-only; the feed is read newest first. The busNo JSON key
// matches what the dashboard sends.
type Alert struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	BusNo       string `json:"busNo" gorm:"column:bus_no"`
	Route       string `json:"route"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Message     string `json:"message"`
	Location    string `json:"location"` // free text, usually "lat, lng"
	Time        string `json:"time" gorm:"size:19"`
}
