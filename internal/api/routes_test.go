package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/workout-app/internal/repository/memory"
	"liftlog/workout-app/internal/service"
)

// newTestRouter wires the full route table against in-memory repositories,
// the same shape demo mode runs with.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profileRepo := memory.NewProfileRepository()
	authService := service.NewAuthService(profileRepo, "test-secret", time.Hour)
	profileService := service.NewProfileService(profileRepo, nil)
	workoutService := service.NewWorkoutService(memory.NewWorkoutRepository())
	advisorService := service.NewAdvisorService(nil)

	router := gin.New()
	SetupRoutes(router, authService.GetJWTSecret(), authService, profileService, workoutService, advisorService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": username})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestPing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}

func TestLoginIssuesTokenAndProfile(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "anna"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "anna", resp.Profile.Username)
	assert.Equal(t, "anna", resp.Profile.DisplayName)
}

func TestLoginRejectsBadRequests(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "two words"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/history", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "anna")

	// No active session yet.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/sessions/active", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Start one.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions", token, gin.H{"type": "Push"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var started struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		Exercises []struct {
			ID   string `json:"id"`
			Sets []struct {
				ID string `json:"id"`
			} `json:"sets"`
		} `json:"exercises"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))
	assert.Equal(t, "active", started.Status)
	require.NotEmpty(t, started.Exercises)

	// A second start conflicts.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions", token, gin.H{"type": "Legs"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown type is rejected.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/sessions/active", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions", token, gin.H{"type": "Yoga"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Start again, log a set, complete, check history.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions", token, gin.H{"type": "Push"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))

	exID := started.Exercises[0].ID
	setID := started.Exercises[0].Sets[0].ID
	rec = doJSON(t, router, http.MethodPut,
		"/api/v1/sessions/active/exercises/"+exID+"/sets/"+setID, token,
		gin.H{"reps": "8", "weight": "60", "completed": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions/active/complete", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hist []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	assert.Len(t, hist, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/streak", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"streak":1}`, rec.Body.String())
}

func TestChatFallbackInDemoMode(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "anna")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/chat", token, gin.H{"message": "hi"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.DemoFallbackMessage, resp.Reply)
}
