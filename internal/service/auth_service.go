package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrInvalidUsername = errors.New("username must be non-empty and contain no spaces")
	ErrTokenGeneration = errors.New("failed to generate authentication token")
)

// AuthService handles demo-grade authentication: a username is the sole
// identity key, there is no password model. Login is create-or-fetch and
// issues a JWT carrying the username as transport identity.
type AuthService interface {
	Login(ctx context.Context, username string) (token string, profile *domain.UserProfile, err error)
	GetJWTSecret() string
}

// authService implements the AuthService interface.
type authService struct {
	profileRepo   repository.ProfileRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(profileRepo repository.ProfileRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		profileRepo:   profileRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Login fetches the profile for a username, creating it on first login.
func (s *authService) Login(ctx context.Context, username string) (string, *domain.UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.ContainsAny(username, " \t") {
		return "", nil, ErrInvalidUsername
	}

	profile, err := s.profileRepo.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		profile = &domain.UserProfile{
			Username:      username,
			DisplayName:   username,
			Gender:        domain.GenderMale,
			ActivityLevel: domain.ActivitySedentary,
		}
		if createErr := s.profileRepo.Create(ctx, profile); createErr != nil {
			// Lost the race against a concurrent first login; re-fetch.
			if errors.Is(createErr, repository.ErrDuplicate) {
				profile, err = s.profileRepo.GetByUsername(ctx, username)
				if err != nil {
					return "", nil, err
				}
			} else {
				return "", nil, createErr
			}
		}
	} else if err != nil {
		return "", nil, err
	}

	token, err := s.generateJWT(profile.Username)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, profile, nil
}

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	Username string `json:"uname"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given username.
func (s *authService) generateJWT(username string) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "liftlog",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication.
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
