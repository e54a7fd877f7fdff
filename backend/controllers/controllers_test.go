package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"agroskills/backend/catalog"
	"agroskills/backend/config"
	"agroskills/backend/routes"
	"agroskills/backend/state"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, *state.Manager) {
	cfg := &config.Config{
		ServerPort: "8080",
		JWTSecret:  "testsecret",
	}

	st := state.NewManager(catalog.NewStore(), catalog.SeedProgress())

	app := fiber.New()
	routes.SetupRoutes(app, st, cfg)
	return app, st
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": "whatever",
	})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	token, ok := result["token"].(string)
	require.True(t, ok)
	return token
}

func TestLoginAlwaysSucceeds(t *testing.T) {
	app, st := newTestApp()

	// A seeded email logs in as that profile.
	body, _ := json.Marshal(map[string]string{"email": "ana.silva@agroskills.com"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Ana Silva", result["user"].(map[string]interface{})["name"])

	// An unknown email still succeeds, as the demo profile.
	body, _ = json.Marshal(map[string]string{"email": "someone@example.com"})
	req = httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	json.NewDecoder(resp.Body).Decode(&result)
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "Carlos Mendes", user["name"])
	assert.Equal(t, "someone@example.com", user["email"])

	require.NotNil(t, st.CurrentUser())
	assert.Equal(t, "someone@example.com", st.CurrentUser().Email)
}

func TestRegisterCreatesSession(t *testing.T) {
	app, st := newTestApp()

	body, _ := json.Marshal(map[string]string{
		"name":       "Joana Prado",
		"email":      "joana@example.com",
		"profession": "Agronomist",
	})
	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.NotEmpty(t, result["token"])

	user := st.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Joana Prado", user.Name)
	assert.Equal(t, "New member", user.Specialization)
	assert.NotEmpty(t, user.ID)
}

func TestRegisterValidatesInput(t *testing.T) {
	app, _ := newTestApp()

	body, _ := json.Marshal(map[string]string{
		"name":  "J",
		"email": "not-an-email",
	})
	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp()

	for _, path := range []string{"/api/dashboard", "/api/courses", "/api/progress/overview"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestCourseListFilters(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app, "carlos.mendes@agroskills.com")

	req := httptest.NewRequest("GET", "/api/courses/?category=Technology", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	require.Len(t, result, 1)
	assert.Equal(t, "Emerging Technologies in Agro", result[0]["title"])
	// The seeded demo user is at 65% here.
	assert.Equal(t, float64(65), result[0]["progress"])

	req = httptest.NewRequest("GET", "/api/courses/?search=interview", nil)
	req.Header.Set("Authorization", token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	json.NewDecoder(resp.Body).Decode(&result)
	require.Len(t, result, 1)
	assert.Equal(t, "Interview Simulator", result[0]["title"])
}

func TestCourseDetailsMarksCompletedModules(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app, "carlos.mendes@agroskills.com")

	req := httptest.NewRequest("GET", "/api/courses/1", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	modules := result["course"].(map[string]interface{})["modules"].([]interface{})
	require.Len(t, modules, 3)
	assert.Equal(t, true, modules[0].(map[string]interface{})["completed"])
	assert.Equal(t, true, modules[1].(map[string]interface{})["completed"])
	assert.Equal(t, false, modules[2].(map[string]interface{})["completed"])
}

func TestStartThenCompleteCourseFlow(t *testing.T) {
	app, st := newTestApp()
	token := login(t, app, "carlos.mendes@agroskills.com")

	// Course "3" has a single module and no seeded record.
	req := httptest.NewRequest("POST", "/api/courses/3/start", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/courses/3/modules/1/complete", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	progress := result["progress"].(map[string]interface{})
	assert.Equal(t, float64(100), progress["progress"])
	assert.NotEmpty(t, progress["completedAt"])

	record, ok := st.CourseProgress("3")
	require.True(t, ok)
	assert.Equal(t, 100, record.Progress)
}

func TestUpdateProgressOnUnstartedCourseIs404(t *testing.T) {
	app, st := newTestApp()
	token := login(t, app, "carlos.mendes@agroskills.com")

	before := st.ProgressCount()

	body, _ := json.Marshal(map[string]int{"progress": 50})
	req := httptest.NewRequest("POST", "/api/courses/5/progress", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, before, st.ProgressCount())
}

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app, "carlos.mendes@agroskills.com")

	body, _ := json.Marshal(map[string]int{"progress": 120})
	req := httptest.NewRequest("POST", "/api/courses/1/progress", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboardRails(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app, "carlos.mendes@agroskills.com")

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	assert.Equal(t, float64(65), result["overallProgress"])
	assert.Len(t, result["featured"].([]interface{}), 3)
	// Seeded records at 65% and 30%.
	assert.Len(t, result["continueWatching"].([]interface{}), 2)

	recommended := result["recommended"].([]interface{})
	require.Len(t, recommended, 2)
	assert.Equal(t, "4", recommended[0].(map[string]interface{})["id"])
	assert.Equal(t, "5", recommended[1].(map[string]interface{})["id"])
}

func TestProgressOverviewEndpoint(t *testing.T) {
	app, _ := newTestApp()
	token := login(t, app, "carlos.mendes@agroskills.com")

	req := httptest.NewRequest("GET", "/api/progress/overview", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, float64(65), result["overallProgress"])
	assert.Equal(t, float64(1), result["coursesCompleted"])
	assert.Equal(t, float64(2), result["coursesInProgress"])
}

func TestLogoutClearsSessionButKeepsProgress(t *testing.T) {
	app, st := newTestApp()
	token := login(t, app, "carlos.mendes@agroskills.com")

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, st.CurrentUser())
	assert.Equal(t, 3, st.ProgressCount())

	// The profile now reports no active session.
	req = httptest.NewRequest("GET", "/api/user/profile", nil)
	req.Header.Set("Authorization", token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
