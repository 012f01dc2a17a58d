package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/service"
	"liftlog/workout-app/internal/storage"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

// UpdateProfileRequest carries optional field updates; absent fields are
// left untouched. The username itself cannot be changed.
type UpdateProfileRequest struct {
	DisplayName   *string               `json:"displayName"`
	Age           *string               `json:"age"`
	Weight        *string               `json:"weight"`
	Height        *string               `json:"height"`
	Gender        *domain.Gender        `json:"gender" binding:"omitempty,oneof=male female"`
	ActivityLevel *domain.ActivityLevel `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate active very_active"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

// --- Handler Methods ---

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile.")
		}
		return
	}

	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// UpdateProfile applies a field-level update to the authenticated user's
// profile. Validation errors block the update and are surfaced inline.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), username, service.ProfileUpdate{
		DisplayName:   req.DisplayName,
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}

	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// GetMetrics returns the derived body metrics (BMI, BMR, TDEE) computed
// fresh from the current profile state.
func (h *ProfileHandler) GetMetrics(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	metrics, err := h.profileService.Metrics(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute metrics.")
		}
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// UploadAvatar accepts a multipart image upload of at most 2 MB and returns
// the stored avatar URL.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing 'avatar' file field.")
		return
	}
	if fileHeader.Size > storage.MaxUploadSize {
		abortWithError(c, http.StatusRequestEntityTooLarge, service.ErrFileTooLarge.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Could not read uploaded file.")
		return
	}
	defer file.Close()

	url, err := h.profileService.UploadAvatar(
		c.Request.Context(),
		username,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		if errors.Is(err, service.ErrFileTooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, err.Error())
		} else if errors.Is(err, service.ErrStorageUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, "Failed to store avatar.")
		}
		return
	}

	c.JSON(http.StatusOK, AvatarResponse{AvatarURL: url})
}
