package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mycrmsystems/elatco-will-system/internal/config"
	"github.com/mycrmsystems/elatco-will-system/internal/sessions"
	"github.com/mycrmsystems/elatco-will-system/internal/tokens"
	"github.com/mycrmsystems/elatco-will-system/pkg/logger"
)

// LoginRequest carries the admin credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	cfg         *config.Config
	sessionsSvc *sessions.Service
}

func NewAuthHandler(cfg *config.Config, s *sessions.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, sessionsSvc: s}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/refresh", h.Refresh)
	a.POST("/logout", h.Logout)
}

// Login checks the submitted credentials against the configured admin account
// and hands out an access token plus a refresh session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.credentialsMatch(req.Email, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
		return
	}

	rft, err := h.sessionsSvc.CreateSession(c.Request.Context(), tokens.AdminSubject, h.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		logger.Errorf("failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	access, err := tokens.GenerateAccessToken(h.cfg, h.cfg.Admin.Email, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create access token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accessToken":  access,
		"refreshToken": rft,
		"expiresIn":    int(h.cfg.JWT.AccessTokenTTL.Seconds()),
	})
}

// Refresh accepts a refresh token and returns a new access token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.sessionsSvc.ValidateRefresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "validation failed"})
		return
	}
	if sess == nil || sess.Subject != tokens.AdminSubject {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	access, err := tokens.GenerateAccessToken(h.cfg, h.cfg.Admin.Email, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create access token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": access, "expiresIn": int(h.cfg.JWT.AccessTokenTTL.Seconds())})
}

// Logout deletes the refresh session and blacklists the presented access
// token for the remainder of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.sessionsSvc.DeleteRefresh(c.Request.Context(), req.RefreshToken); err != nil {
		logger.Warnf("failed to delete refresh session: %v", err)
	}
	if auth := c.GetHeader("Authorization"); auth != "" {
		if raw, ok := strings.CutPrefix(auth, "Bearer "); ok && raw != "" {
			if err := sessions.BlacklistAccessToken(c.Request.Context(), raw, h.cfg.JWT.AccessTokenTTL); err != nil {
				logger.Warnf("failed to blacklist access token: %v", err)
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AuthHandler) credentialsMatch(email, password string) bool {
	emailOK := strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(h.cfg.Admin.Email))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.Admin.Password)) == 1
	return emailOK && passOK
}
