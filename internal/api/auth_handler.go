package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}

// ProfileResponse is the profile DTO returned by the API.
type ProfileResponse struct {
	Username      string               `json:"username"`
	DisplayName   string               `json:"displayName"`
	Age           string               `json:"age"`
	Weight        string               `json:"weight"`
	Height        string               `json:"height"`
	AvatarURL     string               `json:"avatarUrl,omitempty"`
	Gender        domain.Gender        `json:"gender"`
	ActivityLevel domain.ActivityLevel `json:"activityLevel"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// MapProfileToResponse converts a domain UserProfile to its DTO.
func MapProfileToResponse(p *domain.UserProfile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}
	return ProfileResponse{
		Username:      p.Username,
		DisplayName:   p.DisplayName,
		Age:           p.Age,
		Weight:        p.Weight,
		Height:        p.Height,
		AvatarURL:     p.AvatarURL,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
		CreatedAt:     p.CreatedAt,
	}
}

// --- Handler Methods ---

// Login authenticates by username alone (demo-grade auth: the username is
// the sole identity key). First login creates the profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, profile, err := h.authService.Login(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUsername) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Profile: MapProfileToResponse(profile),
	})
}
