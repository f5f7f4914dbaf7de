package service

import (
	"context"
	"errors"
	"time"

	"github.com/mdSHash/SleekSell/internal/config"
	"github.com/mdSHash/SleekSell/internal/dto"
	"github.com/mdSHash/SleekSell/internal/model"
	"github.com/mdSHash/SleekSell/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is deliberately identical for unknown username and
// wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error)
}

type authService struct {
	users *store.CredentialStore
	cfg   *config.Config
}

func NewAuthService(users *store.CredentialStore, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if !s.users.Authenticate(req.Username, req.Password) {
		return nil, ErrInvalidCredentials
	}
	user, ok := s.users.Find(req.Username)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return s.tokenResponse(user)
}

func (s *authService) Refresh(_ context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token invalid or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("malformed token claims")
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, errors.New("malformed token claims")
	}

	user, ok := s.users.Find(username)
	if !ok {
		return nil, errors.New("user no longer exists")
	}
	return s.tokenResponse(user)
}

func (s *authService) RegisterUser(_ context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	role := model.Role(req.Role)
	if err := s.users.Register(req.Username, req.Password, role); err != nil {
		return nil, err
	}
	return &dto.UserResponse{Username: req.Username, Role: req.Role}, nil
}

func (s *authService) tokenResponse(user model.User) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User: dto.UserResponse{
			Username: user.Username,
			Role:     string(user.Role),
		},
	}, nil
}

func (s *authService) generateToken(user model.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
