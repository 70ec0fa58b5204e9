package model

type Bus struct {
	BusID    uint `json:"bus_id" gorm:"primaryKey"`
	DepotID  uint `json:"depot_id"`
	Capacity int  `json:"capacity"`
}

// BusAvailability holds one Yes/No flag per bus per day. Missing rows are
// defaulted to Yes by the depot service before reads.
type BusAvailability struct {
	BusID     uint   `json:"bus_id" gorm:"primaryKey;autoIncrement:false"`
	Date      string `json:"date" gorm:"primaryKey;size:10"`
	Available string `json:"available" gorm:"size:3;default:Yes"`
}

type Crew struct {
	CrewID        uint   `json:"crew_id" gorm:"primaryKey"`
	DriverName    string `json:"driver_name"`
	ConductorName string `json:"conductor_name"`
	AssignedDepot uint   `json:"assigned_depot"`
}

// ScheduleEntry snapshots crew and route names at generation time so the
// day's board stays stable even if reference data changes later.
type ScheduleEntry struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	BusID           uint   `json:"bus_id"`
	RouteID         uint   `json:"route_id"`
	CrewID          uint   `json:"crew_id"`
	DriverName      string `json:"driver_name"`
	ConductorName   string `json:"conductor_name"`
	SourceName      string `json:"source_name"`
	DestinationName string `json:"destination_name"`
	ShiftTime       string `json:"shift_time" gorm:"size:8"` // HH:MM:SS
	ScheduleDate    string `json:"schedule_date" gorm:"size:10"`

	// Alert annotation attached when the board is served, never stored.
	Available    string  `json:"available" gorm:"-"`
	AlertMessage *string `json:"alert_message" gorm:"-"`
}
