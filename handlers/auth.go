// File: handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"wednest/models"
	"wednest/services/session"
	"wednest/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler proxies login/register to the backend and owns the session
// lifecycle around them.
type AuthHandler struct {
	Backend  *upstream.Client
	Sessions session.Service
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(backend *upstream.Client, sessions session.Service) *AuthHandler {
	return &AuthHandler{Backend: backend, Sessions: sessions}
}

// LoginHandler authenticates against the backend and creates a session. The
// browser keeps the backend-issued token as its bearer credential, so the
// response mirrors the backend's login envelope: token at the top level,
// identity under data.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request: " + err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Please enter both email and password."})
		return
	}

	result, err := h.Backend.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	// The backend's user_type is authoritative over the submitted role.
	sess := &models.Session{
		UserID:    result.UserID,
		AuthToken: result.Token,
		Role:      result.UserType,
		Email:     req.Email,
	}
	if err := h.Sessions.Create(c.Request.Context(), sess); err != nil {
		logger.Error("Failed to create session", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Could not establish session"})
		return
	}

	logger.Info("Login succeeded", zap.String("userID", result.UserID), zap.String("role", result.UserType))
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"token":   result.Token,
		"data":    gin.H{"user_id": result.UserID, "user_type": result.UserType},
		"message": "Login successful",
	})
}

// RegisterHandler proxies account creation to the backend. No session is
// created; the front end redirects to login.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		UserType string `json:"user_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request: " + err.Error()})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Username, email and password are required."})
		return
	}

	message, err := h.Backend.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.UserType)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	if message == "" {
		message = "Account created successfully"
	}
	respondMessage(c, http.StatusCreated, message)
}

// LogoutHandler destroys the caller's session. Runs behind the auth
// middleware, so the token is known to be present.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.Sessions.Delete(c.Request.Context(), token); err != nil {
		logger.Error("Failed to delete session", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Could not clear session"})
		return
	}
	respondMessage(c, http.StatusOK, "Logged out")
}
