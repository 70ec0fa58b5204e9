package model

type Route struct {
	RouteID         uint    `json:"route_id" gorm:"primaryKey"`
	RouteName       string  `json:"route_name"`
	SourceName      string  `json:"source_name"`
	SourceLat       float64 `json:"source_lat"`
	SourceLng       float64 `json:"source_lng"`
	DestinationName string  `json:"destination_name"`
	DestinationLat  float64 `json:"destination_lat"`
	DestinationLng  float64 `json:"destination_lng"`

	// Planning inputs for the depot schedule generator.
	DurationMinutes    int `json:"duration"`
	PeakPassengersHour int `json:"peak_passengers_count_perhour"`
	NormPassengersHour int `json:"normal_passengers_count_perhour"`

	// Ordered by stop_order; serialized as [] when the route has no stops.
	Stops []Stop `json:"stops" gorm:"-"`
}

type Stop struct {
	StopID   uint    `json:"stop_id" gorm:"primaryKey"`
	StopName string  `json:"stop_name"`
	StopLat  float64 `json:"stop_lat"`
	StopLng  float64 `json:"stop_lng"`
}

// RouteStop defines the strict total order of stops per route.
type RouteStop struct {
	RouteID   uint `json:"route_id" gorm:"primaryKey;autoIncrement:false"`
	StopID    uint `json:"stop_id" gorm:"primaryKey;autoIncrement:false"`
	StopOrder int  `json:"stop_order"`
}
