package database

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
)

// SeedAll loads a working development dataset. Every insert is
// FirstOrCreate so reruns are harmless.
func SeedAll(db *gorm.DB) {
	seedUsers(db)
	seedDrivers(db)
	seedRoutes(db)
	seedFleet(db)
}

func seedUsers(db *gorm.DB) {
	users := []struct {
		username string
		password string
		role     string
	}{
		{"driver1", "driver123", "driver"},
		{"depomaster", "depo123", "depo-master"},
	}
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Fatal("hashing seed password failed")
		}
		user := model.User{Username: u.username, Password: string(hashed), Role: u.role}
		db.FirstOrCreate(&user, model.User{Username: u.username})
	}
}

func seedDrivers(db *gorm.DB) {
	drivers := []model.Driver{
		{DriverID: "DRV001", Name: "Ramesh Kumar", PictureURL: "/uploads/drivers/drv001.jpg", JobType: "regular"},
		{DriverID: "DRV002", Name: "Suresh Patil", PictureURL: "/uploads/drivers/drv002.jpg", JobType: "regular"},
		{DriverID: "DRV003", Name: "Mahesh Gowda", PictureURL: "/uploads/drivers/drv003.jpg", JobType: "regular"},
		{DriverID: "SPR001", Name: "Anil Shetty", PictureURL: "/uploads/drivers/spr001.jpg", JobType: "spare"},
		{DriverID: "SPR002", Name: "Vijay Rao", PictureURL: "/uploads/drivers/spr002.jpg", JobType: "spare"},
	}
	for _, d := range drivers {
		db.FirstOrCreate(&d, model.Driver{DriverID: d.DriverID})
	}
}

func seedRoutes(db *gorm.DB) {
	stops := []model.Stop{
		{StopID: 1, StopName: "Majestic Central", StopLat: 12.9774, StopLng: 77.5708},
		{StopID: 2, StopName: "Shivajinagar", StopLat: 12.9857, StopLng: 77.6057},
		{StopID: 3, StopName: "Indiranagar", StopLat: 12.9719, StopLng: 77.6412},
		{StopID: 4, StopName: "Silk Board", StopLat: 12.9177, StopLng: 77.6233},
		{StopID: 5, StopName: "Banashankari", StopLat: 12.9255, StopLng: 77.5468},
	}
	for _, s := range stops {
		db.FirstOrCreate(&s, model.Stop{StopID: s.StopID})
	}

	routes := []model.Route{
		{
			RouteID: 335, RouteName: "335E Majestic - Whitefield",
			SourceName: "Kempegowda Bus Station", SourceLat: 12.9774, SourceLng: 77.5708,
			DestinationName: "Whitefield", DestinationLat: 12.9698, DestinationLng: 77.7500,
			DurationMinutes: 90, PeakPassengersHour: 420, NormPassengersHour: 180,
		},
		{
			RouteID: 201, RouteName: "201R Shivajinagar - Banashankari",
			SourceName: "Shivajinagar Bus Station", SourceLat: 12.9857, SourceLng: 77.6057,
			DestinationName: "Banashankari", DestinationLat: 12.9255, DestinationLng: 77.5468,
			DurationMinutes: 60, PeakPassengersHour: 300, NormPassengersHour: 120,
		},
		{
			RouteID: 500, RouteName: "500D Hebbal - Electronic City",
			SourceName: "Hebbal", SourceLat: 13.0358, SourceLng: 77.5970,
			DestinationName: "Electronic City", DestinationLat: 12.8452, DestinationLng: 77.6602,
			DurationMinutes: 110, PeakPassengersHour: 500, NormPassengersHour: 220,
		},
	}
	for _, r := range routes {
		db.FirstOrCreate(&r, model.Route{RouteID: r.RouteID})
	}

	routeStops := []model.RouteStop{
		{RouteID: 335, StopID: 1, StopOrder: 1},
		{RouteID: 335, StopID: 2, StopOrder: 2},
		{RouteID: 335, StopID: 3, StopOrder: 3},
		{RouteID: 201, StopID: 2, StopOrder: 1},
		{RouteID: 201, StopID: 1, StopOrder: 2},
		{RouteID: 201, StopID: 5, StopOrder: 3},
		{RouteID: 500, StopID: 2, StopOrder: 1},
		{RouteID: 500, StopID: 4, StopOrder: 2},
	}
	for _, rs := range routeStops {
		db.FirstOrCreate(&rs, model.RouteStop{RouteID: rs.RouteID, StopID: rs.StopID})
	}
}

func seedFleet(db *gorm.DB) {
	buses := []model.Bus{
		{BusID: 101, DepotID: 1, Capacity: 50},
		{BusID: 102, DepotID: 1, Capacity: 60},
		{BusID: 103, DepotID: 2, Capacity: 45},
	}
	for _, b := range buses {
		db.FirstOrCreate(&b, model.Bus{BusID: b.BusID})
	}

	crews := []model.Crew{
		{CrewID: 1, DriverName: "Ramesh Kumar", ConductorName: "Prakash N", AssignedDepot: 1},
		{CrewID: 2, DriverName: "Suresh Patil", ConductorName: "Manoj S", AssignedDepot: 1},
		{CrewID: 3, DriverName: "Mahesh Gowda", ConductorName: "Kiran B", AssignedDepot: 2},
	}
	for _, c := range crews {
		db.FirstOrCreate(&c, model.Crew{CrewID: c.CrewID})
	}
}
