package service

import (
	"context"
	"errors"
	"time"

	"ratehub/internal/config"
	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/middleware/auth"
	"ratehub/internal/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AdminClaims is the authenticated admin identity extracted from a token.
type AdminClaims struct {
	AdminID  int64
	Username string
}

// AuthService authenticates dashboard admins and validates their tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	ValidateToken(tokenString string) (*AdminClaims, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(adminRepo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dummy compare so a missing account takes as long as a bad
			// password.
			auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(admin.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(s.jwtExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{ID: admin.ID, Username: admin.Username, Token: token}, nil
}

func (s *authService) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	adminID, ok := claims["admin_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &AdminClaims{AdminID: int64(adminID), Username: username}, nil
}
