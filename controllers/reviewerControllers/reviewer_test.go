package reviewerControllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"reviews/database"
	"reviews/models"
	reviewerRoutes "reviews/routers/reviewerRoutes"
	"reviews/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Reviewer{}, &models.Review{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	reviewerRoutes.SetupReviewerRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "test-key")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return resp, result
}

func TestAPIKeyRequired(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviewers", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reviewers", nil)
	req.Header.Set("X-API-Key", "dud0-not-a-real-key")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/reviewers", nil)
	req.Header.Set("X-API-Key", "any-other-key")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateReviewer(t *testing.T) {
	app := setupApp(t)

	resp, result := doRequest(t, app, http.MethodPost, "/api/v1/reviewers", fiber.Map{
		"name":    "Oliver Queen",
		"email":   "green.arrow@queen-consolidated.com",
		"country": "USA",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reviewer models.Reviewer
	require.NoError(t, json.Unmarshal(result.Data, &reviewer))
	assert.Equal(t, "USA", reviewer.Country)
	assert.NotZero(t, reviewer.ID)
}

func TestCreateReviewerNormalizesCountryCase(t *testing.T) {
	app := setupApp(t)

	resp, result := doRequest(t, app, http.MethodPost, "/api/v1/reviewers", fiber.Map{
		"name":    "Slade Wilson",
		"email":   "deathstroke@asai.com",
		"country": "aus",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reviewer models.Reviewer
	require.NoError(t, json.Unmarshal(result.Data, &reviewer))
	assert.Equal(t, "AUS", reviewer.Country)
}

func TestCreateReviewerValidationErrors(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"full country name", fiber.Map{"name": "John Doe", "email": "john@example.com", "country": "United States of America"}},
		{"bad email", fiber.Map{"name": "John Doe", "email": "not-an-email", "country": "USA"}},
		{"short name", fiber.Map{"name": "J", "email": "john@example.com", "country": "USA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/reviewers", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}

func TestCreateReviewerDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	body := fiber.Map{"name": "John Doe", "email": "dup@example.com", "country": "USA"}
	resp, _ := doRequest(t, app, http.MethodPost, "/api/v1/reviewers", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/reviewers", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetReviewerRoundTrip(t *testing.T) {
	app := setupApp(t)

	created, err := services.CreateReviewer("round.trip@example.com", "Round Trip", "jey")
	require.NoError(t, err)

	resp, result := doRequest(t, app, http.MethodGet, "/api/v1/reviewers/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviewer models.Reviewer
	require.NoError(t, json.Unmarshal(result.Data, &reviewer))
	assert.Equal(t, created.ID, reviewer.ID)
	assert.Equal(t, "round.trip@example.com", reviewer.Email)
	assert.Equal(t, "Round Trip", reviewer.Name)
	assert.Equal(t, "JEY", reviewer.Country)
}

func TestGetReviewerNotFound(t *testing.T) {
	app := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/reviewers/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListReviewersByCountry(t *testing.T) {
	app := setupApp(t)

	_, err := services.CreateReviewer("a@example.com", "Reviewer A", "JEY")
	require.NoError(t, err)
	_, err = services.CreateReviewer("b@example.com", "Reviewer B", "USA")
	require.NoError(t, err)

	resp, result := doRequest(t, app, http.MethodGet, "/api/v1/reviewers?country=JEY", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviewers []models.Reviewer
	require.NoError(t, json.Unmarshal(result.Data, &reviewers))
	require.Len(t, reviewers, 1)
	assert.Equal(t, "a@example.com", reviewers[0].Email)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/reviewers?country=NotACountry", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateReviewer(t *testing.T) {
	app := setupApp(t)

	_, err := services.CreateReviewer("patch.me@example.com", "Before Patch", "USA")
	require.NoError(t, err)

	resp, result := doRequest(t, app, http.MethodPatch, "/api/v1/reviewers/1", fiber.Map{"name": "After Patch"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviewer models.Reviewer
	require.NoError(t, json.Unmarshal(result.Data, &reviewer))
	assert.Equal(t, "After Patch", reviewer.Name)
	assert.Equal(t, "patch.me@example.com", reviewer.Email)
	assert.NotNil(t, reviewer.UpdatedAt)
}

func TestUpdateReviewerExplicitNullRejected(t *testing.T) {
	app := setupApp(t)

	_, err := services.CreateReviewer("null.patch@example.com", "Null Patch", "USA")
	require.NoError(t, err)

	resp, _ := doRequest(t, app, http.MethodPatch, "/api/v1/reviewers/1", map[string]any{"name": nil})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteReviewer(t *testing.T) {
	app := setupApp(t)

	_, err := services.CreateReviewer("delete.me@example.com", "Delete Me", "USA")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reviewers/1", nil)
	req.Header.Set("X-API-Key", "test-key")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, raw)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/reviewers/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteReviewerWithReviewsConflicts(t *testing.T) {
	app := setupApp(t)

	reviewer, err := services.CreateReviewer("busy@example.com", "Busy Writer", "USA")
	require.NoError(t, err)
	review, err := services.CreateReview(reviewer.ID, "Keeping Busy", 4, "Written before the delete attempt", nil)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/v1/reviewers/1", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	require.NoError(t, services.DeleteReview(review.ID))

	resp, _ = doRequest(t, app, http.MethodDelete, "/api/v1/reviewers/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
