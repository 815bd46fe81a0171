package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cyra-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret", time.UTC)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	defer response.Body.Close()
	var decoded map[string]any
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":      email,
		"password":   "Sunrise42",
		"first_name": "Test",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", response.StatusCode)
	}

	body := decodeJSON(t, response)
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("register response missing token: %v", body)
	}
	return token
}

func TestRegisterAndLoginFlow(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	registerAndLogin(t, app, "flow@example.com")

	duplicate := performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    "flow@example.com",
		"password": "Sunrise42",
	})
	if duplicate.StatusCode != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", duplicate.StatusCode)
	}

	wrongPassword := performJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "flow@example.com",
		"password": "WrongPass1",
	})
	if wrongPassword.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong password login status = %d, want 401", wrongPassword.StatusCode)
	}

	login := performJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "flow@example.com",
		"password": "Sunrise42",
	})
	if login.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", login.StatusCode)
	}
	if body := decodeJSON(t, login); body["token"] == "" {
		t.Error("login response missing token")
	}
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	noToken := performJSON(t, app, http.MethodGet, "/api/periods/status", "", nil)
	if noToken.StatusCode != http.StatusUnauthorized {
		t.Errorf("missing token status = %d, want 401", noToken.StatusCode)
	}

	badToken := performJSON(t, app, http.MethodGet, "/api/periods/status", "not-a-token", nil)
	if badToken.StatusCode != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want 401", badToken.StatusCode)
	}
}

func TestPeriodLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerAndLogin(t, app, "periods@example.com")

	created := performJSON(t, app, http.MethodPost, "/api/periods/start", token, fiber.Map{
		"start_date": "2025-01-01",
		"end_date":   "2025-01-05",
	})
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("start period status = %d, want 201", created.StatusCode)
	}
	record := decodeJSON(t, created)
	if record["period_length"].(float64) != 5 {
		t.Errorf("period_length = %v, want 5", record["period_length"])
	}

	invalid := performJSON(t, app, http.MethodPost, "/api/periods/start", token, fiber.Map{
		"start_date": "2025-02-10",
		"end_date":   "2025-02-01",
	})
	if invalid.StatusCode != http.StatusBadRequest {
		t.Errorf("reversed dates status = %d, want 400", invalid.StatusCode)
	}

	status := performJSON(t, app, http.MethodGet, "/api/periods/status", token, nil)
	if status.StatusCode != http.StatusOK {
		t.Fatalf("status status = %d, want 200", status.StatusCode)
	}
	snapshot := decodeJSON(t, status)
	if snapshot["avg_cycle_length"].(float64) != 28 {
		t.Errorf("avg_cycle_length = %v, want default 28", snapshot["avg_cycle_length"])
	}
	if snapshot["card_status"] == "" {
		t.Error("card_status missing from status payload")
	}

	listing := performJSON(t, app, http.MethodGet, "/api/periods/list", token, nil)
	if listing.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", listing.StatusCode)
	}
	page := decodeJSON(t, listing)
	if page["total_count"].(float64) != 1 {
		t.Errorf("total_count = %v, want 1", page["total_count"])
	}

	recordID := record["id"].(string)
	deleted := performJSON(t, app, http.MethodDelete, "/api/periods/"+recordID, token, nil)
	if deleted.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", deleted.StatusCode)
	}

	noActive := performJSON(t, app, http.MethodGet, "/api/periods/active", token, nil)
	if noActive.StatusCode != http.StatusNotFound {
		t.Errorf("active without records status = %d, want 404", noActive.StatusCode)
	}
}

func TestOpenPeriodEndFlow(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerAndLogin(t, app, "openend@example.com")
	today := time.Now().UTC().Format("2006-01-02")

	created := performJSON(t, app, http.MethodPost, "/api/periods/start", token, fiber.Map{
		"start_date": today,
	})
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("start open period status = %d, want 201", created.StatusCode)
	}
	record := decodeJSON(t, created)
	if record["end_date"] != nil {
		t.Errorf("end_date = %v, want null while open", record["end_date"])
	}

	active := performJSON(t, app, http.MethodGet, "/api/periods/active", token, nil)
	if active.StatusCode != http.StatusOK {
		t.Fatalf("active status = %d, want 200", active.StatusCode)
	}

	ended := performJSON(t, app, http.MethodPost, "/api/periods/end", token, fiber.Map{
		"period_id": record["id"],
		"end_date":  today,
	})
	if ended.StatusCode != http.StatusOK {
		t.Fatalf("end period status = %d, want 200", ended.StatusCode)
	}
	closed := decodeJSON(t, ended)
	if closed["period_length"].(float64) != 1 {
		t.Errorf("period_length = %v, want 1 for a single-day period", closed["period_length"])
	}
}

func TestDailyLogAndHydrationEndpoints(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerAndLogin(t, app, "daily@example.com")

	upsert := performJSON(t, app, http.MethodPost, "/api/days/", token, fiber.Map{
		"date":  "2025-06-10",
		"mood":  "happy",
		"notes": "walked 5k",
	})
	if upsert.StatusCode != http.StatusOK {
		t.Fatalf("upsert day status = %d, want 200", upsert.StatusCode)
	}

	fetched := performJSON(t, app, http.MethodGet, "/api/days/2025-06-10", token, nil)
	if fetched.StatusCode != http.StatusOK {
		t.Fatalf("get day status = %d, want 200", fetched.StatusCode)
	}

	unknownMood := performJSON(t, app, http.MethodPost, "/api/days/", token, fiber.Map{
		"date": "2025-06-10",
		"mood": "grumpy",
	})
	if unknownMood.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown mood status = %d, want 400", unknownMood.StatusCode)
	}

	actions := performJSON(t, app, http.MethodGet, "/api/days/actions", token, nil)
	if actions.StatusCode != http.StatusOK {
		t.Errorf("daily actions status = %d, want 200", actions.StatusCode)
	}

	intake := performJSON(t, app, http.MethodPost, "/api/hydration/intake", token, fiber.Map{
		"amount_ml": 500,
	})
	if intake.StatusCode != http.StatusOK {
		t.Fatalf("add intake status = %d, want 200", intake.StatusCode)
	}
	hydration := decodeJSON(t, intake)
	if hydration["amount_ml"].(float64) != 500 {
		t.Errorf("amount_ml = %v, want 500", hydration["amount_ml"])
	}

	todayView := performJSON(t, app, http.MethodGet, "/api/hydration/today", token, nil)
	if todayView.StatusCode != http.StatusOK {
		t.Errorf("hydration today status = %d, want 200", todayView.StatusCode)
	}
}

func TestProfileAndWeightEndpoints(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerAndLogin(t, app, "profile@example.com")

	update := performJSON(t, app, http.MethodPut, "/api/profile/", token, fiber.Map{
		"height_cm":     164.0,
		"date_of_birth": "1995-06-15",
		"city":          "Jakarta",
	})
	if update.StatusCode != http.StatusOK {
		t.Fatalf("update profile status = %d, want 200", update.StatusCode)
	}

	weight := performJSON(t, app, http.MethodPost, "/api/weight/", token, fiber.Map{
		"weight":     58.5,
		"unit":       "kg",
		"entry_date": "2025-06-01",
	})
	if weight.StatusCode != http.StatusCreated {
		t.Fatalf("add weight status = %d, want 201", weight.StatusCode)
	}

	profile := performJSON(t, app, http.MethodGet, "/api/profile/", token, nil)
	if profile.StatusCode != http.StatusOK {
		t.Fatalf("get profile status = %d, want 200", profile.StatusCode)
	}
	body := decodeJSON(t, profile)
	customer, ok := body["customer"].(map[string]any)
	if !ok {
		t.Fatalf("profile response missing customer block: %v", body)
	}
	if customer["city"] != "Jakarta" {
		t.Errorf("city = %v, want Jakarta", customer["city"])
	}
	if _, hasBMI := body["bmi"]; !hasBMI {
		t.Error("profile response missing bmi block")
	}
	if body["age"].(float64) < 29 {
		t.Errorf("age = %v, want at least 29", body["age"])
	}
}

func TestPeriodSettingsEndpoints(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerAndLogin(t, app, "prefs@example.com")

	update := performJSON(t, app, http.MethodPut, "/api/periods/settings", token, fiber.Map{
		"use_average_cycle":   true,
		"luteal_phase_length": 13,
	})
	if update.StatusCode != http.StatusOK {
		t.Fatalf("update settings status = %d, want 200", update.StatusCode)
	}

	outOfRange := performJSON(t, app, http.MethodPut, "/api/periods/settings", token, fiber.Map{
		"luteal_phase_length": 20,
	})
	if outOfRange.StatusCode != http.StatusBadRequest {
		t.Errorf("out-of-range luteal status = %d, want 400", outOfRange.StatusCode)
	}

	fetched := performJSON(t, app, http.MethodGet, "/api/periods/settings", token, nil)
	if fetched.StatusCode != http.StatusOK {
		t.Fatalf("get settings status = %d, want 200", fetched.StatusCode)
	}
	settings := decodeJSON(t, fetched)
	if settings["luteal_phase_length"].(float64) != 13 {
		t.Errorf("luteal_phase_length = %v, want 13", settings["luteal_phase_length"])
	}
}
