package repository

import (
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
)

// OrderedStop is one row of the route_stops/stops join, ordered by
// stop_order within each route.
type OrderedStop struct {
	RouteID  uint    `json:"route_id"`
	StopID   uint    `json:"stop_id"`
	StopName string  `json:"stop_name"`
	StopLat  float64 `json:"stop_lat"`
	StopLng  float64 `json:"stop_lng"`
}

type RouteRepository interface {
	GetAll() ([]model.Route, error)
	// Search matches term (already lowercased, without wildcards) against
	// source name, destination name, stringified route id and stop names.
	// Rows may repeat when several stops match; callers deduplicate.
	Search(term string) ([]model.Route, error)
	GetStops(routeIDs []uint) ([]OrderedStop, error)
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db}
}

func (r *routeRepository) GetAll() ([]model.Route, error) {
	var routes []model.Route
	err := r.db.Find(&routes).Error
	return routes, err
}

func (r *routeRepository) Search(term string) ([]model.Route, error) {
	pattern := "%" + term + "%"
	var routes []model.Route
	err := r.db.Model(&model.Route{}).
		Select("routes.*").
		Joins("LEFT JOIN route_stops ON route_stops.route_id = routes.route_id").
		Joins("LEFT JOIN stops ON stops.stop_id = route_stops.stop_id").
		Where("LOWER(routes.source_name) LIKE ? OR LOWER(routes.destination_name) LIKE ? OR CAST(routes.route_id AS CHAR) LIKE ? OR LOWER(stops.stop_name) LIKE ?",
			pattern, pattern, pattern, pattern).
		Find(&routes).Error
	return routes, err
}

func (r *routeRepository) GetStops(routeIDs []uint) ([]OrderedStop, error) {
	if len(routeIDs) == 0 {
		return nil, nil
	}
	var rows []OrderedStop
	err := r.db.Table("route_stops").
		Select("route_stops.route_id, stops.stop_id, stops.stop_name, stops.stop_lat, stops.stop_lng").
		Joins("JOIN stops ON stops.stop_id = route_stops.stop_id").
		Where("route_stops.route_id IN ?", routeIDs).
		Order("route_stops.route_id, route_stops.stop_order").
		Scan(&rows).Error
	return rows, err
}
