package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"paintpro-backend/internal/config"
	"paintpro-backend/internal/domains/auth"
	"paintpro-backend/internal/shared/response"
	"paintpro-backend/pkg/jwt"
)

type AuthHandler struct {
	cfg     config.AuthConfig
	manager *jwt.Manager
}

func NewAuthHandler(cfg config.AuthConfig, manager *jwt.Manager) *AuthHandler {
	return &AuthHandler{cfg: cfg, manager: manager}
}

// Login handles POST /api/auth/login. A single admin credential is configured
// via environment; the stored password is a bcrypt hash.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Username != h.cfg.AdminUsername {
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, expiresAt, err := h.manager.GenerateToken(req.Username)
	if err != nil {
		response.InternalServerError(c, "failed to issue token")
		return
	}

	response.Success(c, http.StatusOK, auth.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
