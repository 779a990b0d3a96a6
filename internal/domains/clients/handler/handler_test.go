package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintpro-backend/internal/domains/clients"
	"paintpro-backend/internal/domains/clients/repository"
	"paintpro-backend/internal/domains/clients/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewClientsHandler(service.NewClientsService(repository.NewFileRepository(t.TempDir())))

	router := gin.New()
	router.GET("/api/clients", h.Get)
	router.PUT("/api/clients", h.Put)
	router.POST("/api/clients", h.Post)
	router.DELETE("/api/clients", h.Delete)
	router.PATCH("/api/clients", h.Patch)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeSection(t *testing.T, w *httptest.ResponseRecorder) clients.Section {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    clients.Section `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success)
	return env.Data
}

func TestPutAssignsDisplayOrderByPosition(t *testing.T) {
	router := newTestRouter(t)

	body := `{
    "heading": "Our Clients",
    "clients": [
      {"src": "/a.png", "alt": "Client A"},
      {"src": "/b.png", "alt": "Client B"}
    ]
  }`
	w := doJSON(router, http.MethodPut, "/api/clients", body)
	require.Equal(t, http.StatusOK, w.Code)

	section := decodeSection(t, doJSON(router, http.MethodGet, "/api/clients", ""))
	require.Len(t, section.Clients, 2)
	assert.Equal(t, 0, section.Clients[0].DisplayOrder)
	assert.Equal(t, 1, section.Clients[1].DisplayOrder)
	assert.Equal(t, "Client A", section.Clients[0].Alt)
	assert.Equal(t, "Client B", section.Clients[1].Alt)
}

func TestPutWithoutHeadingIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPut, "/api/clients", `{"clients": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteWithBadQueryIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodDelete, "/api/clients?id=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchReordersByIDList(t *testing.T) {
	router := newTestRouter(t)

	seed := `{
    "heading": "Our Clients",
    "clients": [
      {"src": "/a.png", "alt": "Client A"},
      {"src": "/b.png", "alt": "Client B"},
      {"src": "/c.png", "alt": "Client C"}
    ]
  }`
	section := decodeSection(t, doJSON(router, http.MethodPut, "/api/clients", seed))
	require.Len(t, section.Clients, 3)

	ids := []int64{section.Clients[2].ID, section.Clients[1].ID, section.Clients[0].ID}
	payload, err := json.Marshal(map[string][]int64{"clientIds": ids})
	require.NoError(t, err)

	w := doJSON(router, http.MethodPatch, "/api/clients", string(payload))
	require.Equal(t, http.StatusOK, w.Code)

	section = decodeSection(t, w)
	assert.Equal(t, "Client C", section.Clients[0].Alt)
	assert.Equal(t, "Client B", section.Clients[1].Alt)
	assert.Equal(t, "Client A", section.Clients[2].Alt)
}
