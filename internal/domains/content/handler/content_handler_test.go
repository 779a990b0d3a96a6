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

	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/domains/content/repository"
	"paintpro-backend/internal/domains/content/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewContentHandler(service.NewContentService(repository.NewFileRepository(t.TempDir())))

	router := gin.New()
	for _, key := range content.SimpleSections {
		path := "/api/" + string(key)
		router.GET(path, h.Get(key))
		router.PUT(path, h.Put(key))
	}
	return router
}

const heroBody = `{
  "location": {"text": "Serving Portland"},
  "mainHeading": {"line1": "Quality Painting.", "line2": "Lasting Results."},
  "subheading": "Done right, on time.",
  "buttons": {
    "primary": {"text": "Get a Quote", "link": "/contact"},
    "secondary": {"text": "Our Work", "link": "/projects"}
  },
  "videoUrl": "/static/media/hero.mp4"
}`

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
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

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestGetUnwrittenSectionIs404(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/hero", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPutThenGetReturnsSavedPayload(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPut, "/api/hero", heroBody)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/hero", "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.JSONEq(t, heroBody, string(env.Data))
}

func TestPutMissingNestedFieldIs400AndLeavesContentUnchanged(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPut, "/api/hero", heroBody).Code)

	bad := strings.Replace(heroBody, `"secondary": {"text": "Our Work", "link": "/projects"}`,
		`"secondary": {"text": "Our Work"}`, 1)
	w := doRequest(router, http.MethodPut, "/api/hero", bad)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "link")

	w = doRequest(router, http.MethodGet, "/api/hero", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, heroBody, string(decode(t, w).Data))
}

func TestPutMalformedBodyIs400(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPut, "/api/hero", `{"location":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEverySimpleSectionRoutesIndependently(t *testing.T) {
	router := newTestRouter(t)

	body := `{
    "phone": "(503) 555-0147",
    "email": "hello@example.com",
    "address": "412 NW Industrial Way",
    "hours": "Mon-Fri 8-6"
  }`
	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPut, "/api/contact", body).Code)

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/api/contact", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/api/about", "").Code)
}
