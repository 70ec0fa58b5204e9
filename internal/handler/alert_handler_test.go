package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bus-depot-backend/internal/model"
)

type fakeAlertRepo struct {
	alerts  []model.Alert
	nextID  uint
	failure error
}

func (f *fakeAlertRepo) Create(alert *model.Alert) error {
	if f.failure != nil {
		return f.failure
	}
	f.nextID++
	alert.ID = f.nextID
	f.alerts = append(f.alerts, *alert)
	return nil
}

func (f *fakeAlertRepo) GetAllDesc() ([]model.Alert, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	out := make([]model.Alert, len(f.alerts))
	copy(out, f.alerts)
	sort.Slice(out, func(i, j int) bool { return out[i].Time > out[j].Time })
	return out, nil
}

func (f *fakeAlertRepo) GetByDate(date string) ([]model.Alert, error) {
	var out []model.Alert
	for _, a := range f.alerts {
		if strings.HasPrefix(a.Time, date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func newAlertApp(repo *fakeAlertRepo) *fiber.App {
	app := fiber.New()
	h := NewAlertHandler(repo, nil)
	app.Post("/api/alerts", h.PostAlert)
	app.Get("/api/alerts", h.GetAlerts)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

const validAlertBody = `{
	"busNo": "101",
	"route": "335",
	"source": "Majestic",
	"destination": "Whitefield",
	"message": "Engine failure",
	"location": "Marathahalli bridge",
	"time": "2026-08-28 09:15:00"
}`

func TestPostAlert_CreatesAndReturnsID(t *testing.T) {
	repo := &fakeAlertRepo{}
	app := newAlertApp(repo)

	status, body := postJSON(t, app, "/api/alerts", validAlertBody)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Alert created", body["message"])
	assert.EqualValues(t, 1, body["id"])
	require.Len(t, repo.alerts, 1)
	assert.Equal(t, "101", repo.alerts[0].BusNo)
	assert.Equal(t, "Engine failure", repo.alerts[0].Message)
}

func TestPostAlert_MissingFields_ListsAllOfThem(t *testing.T) {
	repo := &fakeAlertRepo{}
	app := newAlertApp(repo)

	status, body := postJSON(t, app, "/api/alerts", `{"busNo":"101","route":"335","time":"  "}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields: source, destination, message, location, time", body["error"])
	assert.Empty(t, repo.alerts)
}

func TestPostAlert_RepoFailure_ReturnsDatabaseError(t *testing.T) {
	repo := &fakeAlertRepo{failure: errors.New("connection refused")}
	app := newAlertApp(repo)

	status, body := postJSON(t, app, "/api/alerts", validAlertBody)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Database error", body["error"])
}

func TestGetAlerts_ReturnsMostRecentFirst(t *testing.T) {
	repo := &fakeAlertRepo{alerts: []model.Alert{
		{ID: 1, BusNo: "101", Time: "2026-08-27 08:00:00"},
		{ID: 2, BusNo: "102", Time: "2026-08-28 09:15:00"},
	}}
	app := newAlertApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/alerts", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var alerts []model.Alert
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&alerts))
	require.Len(t, alerts, 2)
	assert.Equal(t, "102", alerts[0].BusNo)
	assert.Equal(t, "101", alerts[1].BusNo)
}

func TestGetAlerts_EmptyFeed_ReturnsEmptyArray(t *testing.T) {
	app := newAlertApp(&fakeAlertRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/alerts", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}
