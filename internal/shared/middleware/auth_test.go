package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintpro-backend/pkg/jwt"
)

func protectedRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/hero", AdminAuth(manager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return router
}

func TestAdminAuthAcceptsValidToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	token, _, err := manager.GenerateToken("admin")
	require.NoError(t, err)

	router := protectedRouter(manager)
	req := httptest.NewRequest(http.MethodPut, "/api/hero", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAdminAuthRejectsMissingHeader(t *testing.T) {
	router := protectedRouter(jwt.NewManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodPut, "/api/hero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsMalformedHeader(t *testing.T) {
	router := protectedRouter(jwt.NewManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodPut, "/api/hero", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsForgedToken(t *testing.T) {
	forged, _, err := jwt.NewManager("other-secret", time.Hour).GenerateToken("admin")
	require.NoError(t, err)

	router := protectedRouter(jwt.NewManager("test-secret", time.Hour))
	req := httptest.NewRequest(http.MethodPut, "/api/hero", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
