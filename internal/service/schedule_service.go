package service

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"bus-depot-backend/internal/model"
	"bus-depot-backend/internal/repository"
)

// Operating day in minutes since midnight, walked in 15-minute dispatch
// ticks. Peak windows are 06:00-09:00 and 17:00-21:00.
const (
	operatingStartMin = 4 * 60
	operatingEndMin   = 23*60 + 59
	dispatchStepMin   = 15

	// A crew stops taking assignments after 12 worked hours.
	maxCrewMinutes = 720

	// Turnaround padding added to every trip.
	turnaroundMin = 40

	fallbackCapacity = 50
)

// ScheduleService builds the day's dispatch board: available buses and
// depot-matched crews assigned to routes at a frequency derived from
// passenger demand.
type ScheduleService struct {
	buses  repository.BusRepository
	sched  repository.ScheduleRepository
	routes repository.RouteRepository
	loc    *time.Location
}

func NewScheduleService(buses repository.BusRepository, sched repository.ScheduleRepository, routes repository.RouteRepository, loc *time.Location) *ScheduleService {
	return &ScheduleService{buses: buses, sched: sched, routes: routes, loc: loc}
}

func (s *ScheduleService) today() string {
	return time.Now().In(s.loc).Format(model.DateLayout)
}

// GenerateToday builds today's schedule and appends only the entries that
// are not stored yet, so repeated calls never duplicate the board.
func (s *ScheduleService) GenerateToday() ([]model.ScheduleEntry, error) {
	date := s.today()

	if err := s.buses.EnsureAvailability(date); err != nil {
		return nil, fmt.Errorf("default availability: %w", err)
	}

	available, err := s.buses.GetAvailable(date)
	if err != nil {
		return nil, fmt.Errorf("load available buses: %w", err)
	}
	crews, err := s.sched.GetCrews()
	if err != nil {
		return nil, fmt.Errorf("load crews: %w", err)
	}
	routes, err := s.routes.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	for _, entry := range BuildSchedule(available, crews, routes, date) {
		exists, err := s.sched.EntryExists(date, entry.BusID, entry.ShiftTime, entry.RouteID)
		if err != nil {
			return nil, fmt.Errorf("check entry: %w", err)
		}
		if exists {
			continue
		}
		entry := entry
		if err := s.sched.CreateEntry(&entry); err != nil {
			return nil, fmt.Errorf("store entry: %w", err)
		}
	}

	return s.sched.GetEntries(date)
}

// BuildSchedule is the pure planning step. It walks the operating day in
// dispatch ticks; per tick and route it derives a trip frequency from the
// hourly passenger count and the average fleet capacity, then greedily
// pairs a free bus with a free crew from the same depot. Each assignment
// occupies both for the route duration plus turnaround.
func BuildSchedule(buses []model.Bus, crews []model.Crew, routes []model.Route, date string) []model.ScheduleEntry {
	avgCapacity := float64(fallbackCapacity)
	if len(buses) > 0 {
		total := 0
		for _, bus := range buses {
			total += bus.Capacity
		}
		avgCapacity = float64(total) / float64(len(buses))
	}

	busFreeAt := make(map[uint]int, len(buses))
	crewFreeAt := make(map[uint]int, len(crews))
	crewWorked := make(map[uint]int, len(crews))
	for _, bus := range buses {
		busFreeAt[bus.BusID] = operatingStartMin
	}
	for _, crew := range crews {
		crewFreeAt[crew.CrewID] = operatingStartMin
	}

	var entries []model.ScheduleEntry
	for tick := operatingStartMin; tick <= operatingEndMin; tick += dispatchStepMin {
		peak := isPeakMinute(tick)

		for _, route := range routes {
			passengers := route.NormPassengersHour
			if peak {
				passengers = route.PeakPassengersHour
			}
			frequency := int(math.Ceil(float64(passengers) / avgCapacity))
			if frequency < 1 {
				frequency = 1
			}

			assignments := 0
			for _, bus := range buses {
				if busFreeAt[bus.BusID] > tick {
					continue
				}

				var crew *model.Crew
				for i := range crews {
					candidate := &crews[i]
					if candidate.AssignedDepot == bus.DepotID &&
						crewFreeAt[candidate.CrewID] <= tick &&
						crewWorked[candidate.CrewID] < maxCrewMinutes {
						crew = candidate
						break
					}
				}
				if crew == nil {
					continue
				}

				entries = append(entries, model.ScheduleEntry{
					BusID:           bus.BusID,
					RouteID:         route.RouteID,
					CrewID:          crew.CrewID,
					DriverName:      crew.DriverName,
					ConductorName:   crew.ConductorName,
					SourceName:      route.SourceName,
					DestinationName: route.DestinationName,
					ShiftTime:       minutesToClock(tick),
					ScheduleDate:    date,
				})

				busy := route.DurationMinutes + turnaroundMin
				busFreeAt[bus.BusID] = tick + busy
				crewFreeAt[crew.CrewID] = tick + busy
				crewWorked[crew.CrewID] += busy

				assignments++
				if assignments >= frequency {
					break
				}
			}
		}
	}

	return entries
}

// AnnotateAlerts marks every scheduled bus that has an alert today as
// unavailable and attaches the alert message.
func AnnotateAlerts(entries []model.ScheduleEntry, alerts []model.Alert) {
	alertByBus := make(map[string]string, len(alerts))
	for _, alert := range alerts {
		alertByBus[alert.BusNo] = alert.Message
	}

	for i := range entries {
		busNo := strconv.FormatUint(uint64(entries[i].BusID), 10)
		if msg, ok := alertByBus[busNo]; ok {
			message := msg
			entries[i].Available = "No"
			entries[i].AlertMessage = &message
		} else {
			entries[i].Available = "Yes"
			entries[i].AlertMessage = nil
		}
	}
}

// RunDailyTasks is the start-of-day housekeeping: default every bus to
// available and regenerate the board.
func (s *ScheduleService) RunDailyTasks() {
	date := s.today()
	if err := s.buses.EnsureAvailability(date); err != nil {
		logrus.WithError(err).Error("daily availability reset failed")
		return
	}
	entries, err := s.GenerateToday()
	if err != nil {
		logrus.WithError(err).Error("daily schedule generation failed")
		return
	}
	logrus.WithFields(logrus.Fields{"date": date, "entries": len(entries)}).Info("daily schedule generated")
}

// StartScheduler fires RunDailyTasks once a day at the configured wall
// clock time.
func (s *ScheduleService) StartScheduler(hour, minute int) {
	go func() {
		logrus.Info("depot scheduler started")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now().In(s.loc)
			if now.Hour() == hour && now.Minute() == minute {
				s.RunDailyTasks()
			}
		}
	}()
}

func isPeakMinute(tick int) bool {
	hour := tick / 60
	return (hour >= 6 && hour < 9) || (hour >= 17 && hour < 21)
}

func minutesToClock(tick int) string {
	return fmt.Sprintf("%02d:%02d:00", tick/60, tick%60)
}
