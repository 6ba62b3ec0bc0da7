package handler

import (
	"net/http"
	"time"

	"healthcare-backend/internal/service"
	"healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login authenticates a user by username or email
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(req.Login, req.Password)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	setRefreshCookie(c, response.RefreshToken)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// Register creates a new staff account
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Register(req.Email, req.Username, req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setRefreshCookie(c, response.RefreshToken)

	utils.CreatedResponse(c, gin.H{
		"access_token": response.AccessToken,
		"user":         response.User,
	})
}

// Refresh generates a new access token from the refresh token cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		clearRefreshCookie(c)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(refreshToken); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	clearRefreshCookie(c)
	utils.MessageResponse(c, "Logged out successfully")
}

func setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(
		"refresh_token",
		token,
		int(7*24*time.Hour.Seconds()),
		"/",
		"",
		false, // secure; enable behind HTTPS
		true,  // httpOnly
	)
}

func clearRefreshCookie(c *gin.Context) {
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
}
