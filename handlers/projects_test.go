package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate/database"
)

func TestCreateAndListProjects(t *testing.T) {
	r := newTestRouter(database.NewMemStore())

	id := createOK(t, r, "/api/projects", map[string]any{
		"name":       "Spring Campaign",
		"client_id":  "c1",
		"status":     "production",
		"start_date": "2025-03-01T00:00:00Z",
		"budget":     25000,
		"tags":       []string{"commercial"},
		"members":    []string{"e1", "e2"},
	})

	w := doRequest(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)

	projects := decodeList(t, w)
	require.Len(t, projects, 1)

	got := projects[0]
	assert.Equal(t, id, got["id"])
	assert.Equal(t, "Spring Campaign", got["name"])
	assert.Equal(t, "c1", got["client_id"])
	assert.Equal(t, "production", got["status"])
	assert.Equal(t, "2025-03-01T00:00:00Z", got["start_date"])
	assert.Equal(t, float64(25000), got["budget"])
	assert.Equal(t, []any{"e1", "e2"}, got["members"])
}

func TestCreateProject_Defaults(t *testing.T) {
	r := newTestRouter(database.NewMemStore())

	createOK(t, r, "/api/projects", map[string]any{"name": "Spring Campaign"})

	w := doRequest(t, r, http.MethodGet, "/api/projects", nil)
	got := decodeList(t, w)[0]

	assert.Equal(t, "planning", got["status"])
	assert.Equal(t, []any{}, got["tags"])
	assert.Equal(t, []any{}, got["members"])
	assert.Nil(t, got["due_date"])
}

func TestCreateProject_Invalid(t *testing.T) {
	r := newTestRouter(database.NewMemStore())

	w := doRequest(t, r, http.MethodPost, "/api/projects", map[string]any{
		"name":   "Spring Campaign",
		"budget": -100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/projects", map[string]any{
		"name":   "Spring Campaign",
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/projects", nil)
	assert.Empty(t, decodeList(t, w))
}
