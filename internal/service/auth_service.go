package service

import (
	"errors"
	"fmt"
	"time"

	"healthcare-backend/internal/apperr"
	"healthcare-backend/internal/models"
	"healthcare-backend/pkg/utils"
)

type AuthService struct {
	userStore  UserStore
	auditStore AuditStore
}

func NewAuthService(userStore UserStore, auditStore AuditStore) *AuthService {
	return &AuthService{
		userStore:  userStore,
		auditStore: auditStore,
	}
}

// LoginResponse represents the response structure for login and registration
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Login authenticates a user by username or email and returns tokens
func (s *AuthService) Login(login, password string) (*LoginResponse, error) {
	user, err := s.userStore.FindUserByLogin(login)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errors.New("invalid credentials")
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	_ = s.auditStore.CreateAuditLog(&userID, "user_login", fmt.Sprintf("User %s logged in", user.Username))

	return response, nil
}

// Register creates a new user account and logs it in
func (s *AuthService) Register(email, username, name, password string) (*LoginResponse, error) {
	if existing, err := s.userStore.FindUserByLogin(username); err == nil && existing != nil {
		return nil, apperr.Validation("username", "Username already exists")
	}
	if existing, err := s.userStore.FindUserByLogin(email); err == nil && existing != nil {
		return nil, apperr.Validation("email", "Email already registered")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
	}
	if err := s.userStore.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	_ = s.auditStore.CreateAuditLog(&userID, "user_registration", fmt.Sprintf("User %s registered", username))

	return response, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userStore.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.userStore.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.userStore.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			Name:     user.Name,
		},
	}, nil
}
