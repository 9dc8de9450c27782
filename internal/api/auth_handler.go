package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hayseedprops/hayseed-dashboard/internal/auth"
	"github.com/hayseedprops/hayseed-dashboard/pkg/config"
)

// AuthHandler issues tokens for the admin surface against the configured
// credentials. There is no user store; a single operator account comes from
// the environment.
type AuthHandler struct {
	cfg        *config.Config
	jwtService *auth.JWTService
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg:        cfg,
		jwtService: auth.NewJWTService(cfg.JWTSecret),
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates credentials and returns a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	if !h.cfg.HasAdminCredentials() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access is not configured"})
		return
	}

	if req.Username != h.cfg.AdminUsername || !auth.CheckPassword(req.Password, h.cfg.AdminPasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt,
	})
}
