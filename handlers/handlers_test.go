package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"slate/database"
)

// newTestRouter wires the full API surface over an in-memory store, the
// same routes main registers over the real one.
func newTestRouter(store *database.MemStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/", Root)
	r.GET("/api/hello", Hello)
	r.GET("/test", TestDatabase(store))

	r.POST("/api/clients", CreateClient(store))
	r.GET("/api/clients", ListClients(store))
	r.POST("/api/employees", CreateEmployee(store))
	r.GET("/api/employees", ListEmployees(store))
	r.POST("/api/projects", CreateProject(store))
	r.GET("/api/projects", ListProjects(store))
	r.POST("/api/tasks", CreateTask(store))
	r.GET("/api/tasks", ListTasks(store))
	r.POST("/api/invoices", CreateInvoice(store))
	r.GET("/api/invoices", ListInvoices(store))

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createOK posts a payload and returns the assigned id.
func createOK(t *testing.T, r *gin.Engine, path string, payload any) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, path, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	id, ok := decodeObject(t, w)["id"].(string)
	require.True(t, ok, "create response must carry a string id")
	require.NotEmpty(t, id)
	return id
}
