package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"liftlog/workout-app/internal/analytics"
	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
	"liftlog/workout-app/internal/storage"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrFileTooLarge       = fmt.Errorf("file exceeds the %d byte upload limit", storage.MaxUploadSize)
	ErrStorageUnavailable = errors.New("file storage is not configured")
)

// ProfileUpdate carries field-level changes; nil pointers mean "leave as is".
// The username itself is immutable and not part of the update surface.
type ProfileUpdate struct {
	DisplayName   *string
	Age           *string
	Weight        *string
	Height        *string
	Gender        *domain.Gender
	ActivityLevel *domain.ActivityLevel
}

// BodyMetrics bundles the derived values the profile screen displays.
// Zero values mean the underlying profile fields are unset; the category is
// empty in that case and its display is skipped.
type BodyMetrics struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmiCategory,omitempty"`
	BMR         float64 `json:"bmr"`
	TDEE        float64 `json:"tdee"`
}

// ProfileService manages profile reads, field updates, avatar uploads and
// derived body metrics.
type ProfileService interface {
	Get(ctx context.Context, username string) (*domain.UserProfile, error)
	Update(ctx context.Context, username string, update ProfileUpdate) (*domain.UserProfile, error)
	Metrics(ctx context.Context, username string) (*BodyMetrics, error)
	UploadAvatar(ctx context.Context, username, fileName, contentType string, body io.Reader, size int64) (string, error)
}

// profileService implements the ProfileService interface. fileStorage may be
// nil when no object storage is configured (demo mode); avatar uploads are
// then rejected with ErrStorageUnavailable.
type profileService struct {
	profileRepo repository.ProfileRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		fileStorage: fileStorage,
	}
}

// Get retrieves a profile by username.
func (s *profileService) Get(ctx context.Context, username string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// validateNumericField accepts the empty state or a non-negative number.
func validateNumericField(name, value string) error {
	if value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number", ErrValidationFailed, name)
	}
	return nil
}

// Update applies a field-level update and returns the refreshed profile.
func (s *profileService) Update(ctx context.Context, username string, update ProfileUpdate) (*domain.UserProfile, error) {
	fields := map[string]any{}

	if update.DisplayName != nil {
		if strings.TrimSpace(*update.DisplayName) == "" {
			return nil, fmt.Errorf("%w: display name cannot be empty", ErrValidationFailed)
		}
		fields["displayName"] = *update.DisplayName
	}
	if update.Age != nil {
		if err := validateNumericField("age", *update.Age); err != nil {
			return nil, err
		}
		fields["age"] = *update.Age
	}
	if update.Weight != nil {
		if err := validateNumericField("weight", *update.Weight); err != nil {
			return nil, err
		}
		fields["weight"] = *update.Weight
	}
	if update.Height != nil {
		if err := validateNumericField("height", *update.Height); err != nil {
			return nil, err
		}
		fields["height"] = *update.Height
	}
	if update.Gender != nil {
		if *update.Gender != domain.GenderMale && *update.Gender != domain.GenderFemale {
			return nil, fmt.Errorf("%w: unknown gender %q", ErrValidationFailed, *update.Gender)
		}
		fields["gender"] = *update.Gender
	}
	if update.ActivityLevel != nil {
		fields["activityLevel"] = *update.ActivityLevel
	}

	if len(fields) > 0 {
		if err := s.profileRepo.UpdateFields(ctx, username, fields); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}
	}
	return s.Get(ctx, username)
}

// Metrics recomputes BMI, BMR and TDEE from the current profile state.
func (s *profileService) Metrics(ctx context.Context, username string) (*BodyMetrics, error) {
	profile, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	bmi := analytics.BMI(profile.WeightKg(), profile.HeightCm())
	bmr := analytics.BMR(profile.WeightKg(), profile.HeightCm(), profile.AgeYears(), profile.Gender)

	return &BodyMetrics{
		BMI:         bmi,
		BMICategory: analytics.BMICategory(bmi),
		BMR:         bmr,
		TDEE:        analytics.TDEE(bmr, profile.ActivityLevel),
	}, nil
}

// UploadAvatar stores an avatar image and records its URL on the profile.
// The 2 MB size limit is enforced here, before any bytes are sent. When the
// profile already carries an avatar, the previous object is deleted after
// the replacement is recorded; a failed cleanup only leaves an orphan.
func (s *profileService) UploadAvatar(ctx context.Context, username, fileName, contentType string, body io.Reader, size int64) (string, error) {
	if s.fileStorage == nil {
		return "", ErrStorageUnavailable
	}
	if size <= 0 || size > storage.MaxUploadSize {
		return "", ErrFileTooLarge
	}

	profile, err := s.Get(ctx, username)
	if err != nil {
		return "", err
	}

	ext := path.Ext(fileName)
	objectKey := path.Join("avatars", username, uuid.NewString()+ext)

	avatarURL, err := s.fileStorage.Upload(ctx, objectKey, contentType, body, size)
	if err != nil {
		return "", err
	}

	if err := s.profileRepo.UpdateFields(ctx, username, map[string]any{"avatarUrl": avatarURL}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrProfileNotFound
		}
		return "", err
	}

	if oldKey := avatarObjectKey(profile.AvatarURL); oldKey != "" {
		if err := s.fileStorage.DeleteObject(ctx, oldKey); err != nil {
			log.Printf("WARN: Failed to delete previous avatar object '%s': %v", oldKey, err)
		}
	}
	return avatarURL, nil
}

// avatarObjectKey recovers the storage key from a previously issued avatar
// URL. Works for both virtual-host and path-style URLs since every key is
// rooted at "avatars/". Returns "" when no key can be recovered.
func avatarObjectKey(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	p := strings.TrimPrefix(u.Path, "/")
	if i := strings.Index(p, "avatars/"); i >= 0 {
		return p[i:]
	}
	return ""
}
