package handler

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"bus-depot-backend/internal/model"
	"bus-depot-backend/internal/repository"
)

// Routes closer than this to the query point are "nearby". The boundary is
// excluded.
const proximityRadiusKm = 5.0

type RouteHandler struct {
	repo repository.RouteRepository
}

func NewRouteHandler(repo repository.RouteRepository) *RouteHandler {
	return &RouteHandler{repo: repo}
}

// GetRoutes lists routes, optionally filtered and ordered by distance from
// the caller's position to each route's source, optionally capped.
func (h *RouteHandler) GetRoutes(c *fiber.Ctx) error {
	limit := -1
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a number"})
		}
		limit = parsed
	}

	var lat, lng float64
	hasPoint := false
	if rawLat, rawLng := c.Query("lat"), c.Query("lng"); rawLat != "" && rawLng != "" {
		var err error
		if lat, err = strconv.ParseFloat(rawLat, 64); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lat must be a number"})
		}
		if lng, err = strconv.ParseFloat(rawLng, 64); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lng must be a number"})
		}
		hasPoint = true
	}

	routes, err := h.repo.GetAll()
	if err != nil {
		logrus.WithError(err).Error("fetching routes failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if hasPoint {
		routes = nearbyRoutes(routes, lat, lng)
	}
	if limit >= 0 && len(routes) > limit {
		routes = routes[:limit]
	}
	if routes == nil {
		routes = []model.Route{}
	}

	if err := h.attachStops(routes); err != nil {
		logrus.WithError(err).Error("fetching stops failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(routes)
}

// SearchRoutes free-text matches against route endpoints, the stringified
// route id and stop names.
func (h *RouteHandler) SearchRoutes(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("stops"))
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "stops query parameter is required"})
	}

	routes, err := h.repo.Search(strings.ToLower(term))
	if err != nil {
		logrus.WithError(err).WithField("term", term).Error("route search failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	routes = dedupRoutes(routes)
	if routes == nil {
		routes = []model.Route{}
	}

	if err := h.attachStops(routes); err != nil {
		logrus.WithError(err).Error("fetching stops failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(routes)
}

// attachStops fills every route's ordered stop list in one join query. A
// route with no stops gets an empty array, never null.
func (h *RouteHandler) attachStops(routes []model.Route) error {
	ids := make([]uint, 0, len(routes))
	for i := range routes {
		routes[i].Stops = []model.Stop{}
		ids = append(ids, routes[i].RouteID)
	}

	rows, err := h.repo.GetStops(ids)
	if err != nil {
		return err
	}

	byRoute := make(map[uint][]model.Stop, len(routes))
	for _, row := range rows {
		byRoute[row.RouteID] = append(byRoute[row.RouteID], model.Stop{
			StopID:   row.StopID,
			StopName: row.StopName,
			StopLat:  row.StopLat,
			StopLng:  row.StopLng,
		})
	}
	for i := range routes {
		if stops, ok := byRoute[routes[i].RouteID]; ok {
			routes[i].Stops = stops
		}
	}
	return nil
}

// nearbyRoutes keeps routes whose source is strictly inside the proximity
// radius, ordered nearest first.
func nearbyRoutes(routes []model.Route, lat, lng float64) []model.Route {
	type scored struct {
		route    model.Route
		distance float64
	}
	var kept []scored
	for _, route := range routes {
		d := haversineKm(lat, lng, route.SourceLat, route.SourceLng)
		if d < proximityRadiusKm {
			kept = append(kept, scored{route: route, distance: d})
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].distance < kept[j].distance })

	out := make([]model.Route, len(kept))
	for i, s := range kept {
		out[i] = s.route
	}
	return out
}

// dedupRoutes drops repeated route ids while keeping first-seen order; the
// search join yields one row per matching stop.
func dedupRoutes(routes []model.Route) []model.Route {
	seen := make(map[uint]bool, len(routes))
	out := routes[:0]
	for _, route := range routes {
		if seen[route.RouteID] {
			continue
		}
		seen[route.RouteID] = true
		out = append(out, route)
	}
	return out
}

// Haversine great-circle distance between two coordinates, in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371 // Earth radius in km
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}
