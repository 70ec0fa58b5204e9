package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bus-depot-backend/internal/model"
	"bus-depot-backend/internal/repository"
	"bus-depot-backend/internal/usecase"
)

// fakeSlotRepo is an in-memory stand-in for the MySQL-backed repository,
// enforcing the same one-row-per-driver-per-day constraint.
type fakeSlotRepo struct {
	records []model.AttendanceRecord
	nextID  uint
}

func (f *fakeSlotRepo) Transaction(fn func(repository.AttendanceRepository) error) error {
	return fn(f)
}

func (f *fakeSlotRepo) FindSlot(driverID, date string) (*model.AttendanceRecord, error) {
	for i := range f.records {
		r := &f.records[i]
		if r.Date != date {
			continue
		}
		if r.DriverID == driverID || (r.ReplacementDriverID != nil && *r.ReplacementDriverID == driverID) {
			rec := *r
			return &rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSlotRepo) FindPrimary(driverID, date string) (*model.AttendanceRecord, error) {
	for i := range f.records {
		if f.records[i].Date == date && f.records[i].DriverID == driverID {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSlotRepo) Create(rec *model.AttendanceRecord) error {
	for i := range f.records {
		if f.records[i].DriverID == rec.DriverID && f.records[i].Date == rec.Date {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	rec.ID = f.nextID
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeSlotRepo) Update(rec *model.AttendanceRecord) error {
	for i := range f.records {
		if f.records[i].ID == rec.ID {
			f.records[i] = *rec
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeSlotRepo) Migrate(oldDriverID, newDriverID, date string) (int64, error) {
	var n int64
	for i := range f.records {
		if f.records[i].DriverID == oldDriverID && f.records[i].Date == date {
			f.records[i].DriverID = newDriverID
			n++
		}
	}
	return n, nil
}

func putJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("PUT", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func newAttendanceApp(repo *fakeSlotRepo) *fiber.App {
	app := fiber.New()
	h := NewAttendanceHandler(usecase.NewAttendanceUsecase(repo, time.UTC))
	app.Post("/api/attendance/checkin", h.CheckIn)
	app.Post("/api/attendance/checkout", h.CheckOut)
	app.Post("/api/attendance/replace", h.Replace)
	app.Put("/api/attendance/migrate", h.Migrate)
	return app
}

func TestCheckIn_FirstOfDay_Returns201(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, body := postJSON(t, app, "/api/attendance/checkin", `{"driver_id":"DRV001"}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Check-in successful", body["message"])
	assert.EqualValues(t, 1, body["attendance_id"])
}

func TestCheckIn_MissingDriverID_Returns400(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, body := postJSON(t, app, "/api/attendance/checkin", `{}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "driver_id is required", body["error"])
}

func TestCheckIn_Twice_Returns400WithMessage(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, _ := postJSON(t, app, "/api/attendance/checkin", `{"driver_id":"DRV001"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/api/attendance/checkin", `{"driver_id":"DRV001"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Driver has already checked in today", body["error"])
}

func TestCheckOut_WithoutCheckIn_Returns400(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, body := postJSON(t, app, "/api/attendance/checkout", `{"driver_id":"DRV001"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Driver has not checked in today", body["error"])
}

func TestCheckOut_AfterCheckIn_Returns200ThenRejectsSecond(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, _ := postJSON(t, app, "/api/attendance/checkin", `{"driver_id":"DRV001"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/api/attendance/checkout", `{"driver_id":"DRV001"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Check-out successful", body["message"])

	status, body = postJSON(t, app, "/api/attendance/checkout", `{"driver_id":"DRV001"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Driver has already checked out today", body["error"])
}

func TestReplace_ThenOriginalTriesCheckIn_SlotAlreadyTaken(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, body := postJSON(t, app, "/api/attendance/replace",
		`{"originalDriverId":"DRV001","replacementDriverId":"SPR001"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Replacement successful", body["message"])

	// The replacement checks in against the original's slot.
	status, _ = postJSON(t, app, "/api/attendance/checkin", `{"driver_id":"SPR001"}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestReplace_AfterCheckIn_Returns400(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, _ := postJSON(t, app, "/api/attendance/checkin", `{"driver_id":"DRV001"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/api/attendance/replace",
		`{"originalDriverId":"DRV001","replacementDriverId":"SPR001"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Driver has already checked in and cannot be replaced", body["error"])
}

func TestReplace_MissingIDs_Returns400(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, body := postJSON(t, app, "/api/attendance/replace", `{"originalDriverId":"DRV001"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "originalDriverId and replacementDriverId are required", body["error"])
}

func TestMigrate_ReportsAffectedRows(t *testing.T) {
	repo := &fakeSlotRepo{}
	app := newAttendanceApp(repo)

	status, _ := postJSON(t, app, "/api/attendance/checkin", `{"driver_id":"DRV001"}`)
	require.Equal(t, fiber.StatusCreated, status)
	date := repo.records[0].Date

	req := `{"oldDriverId":"DRV001","newDriverId":"DRV002","date":"` + date + `"}`
	status, body := putJSON(t, app, "/api/attendance/migrate", req)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Migration successful", body["message"])
	assert.EqualValues(t, 1, body["affectedRows"])
	assert.Equal(t, "DRV002", repo.records[0].DriverID)
}

func TestMigrate_MissingFields_Returns400(t *testing.T) {
	app := newAttendanceApp(&fakeSlotRepo{})

	status, body := putJSON(t, app, "/api/attendance/migrate", `{"oldDriverId":"DRV001"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "oldDriverId, newDriverId and date are required", body["error"])
}
