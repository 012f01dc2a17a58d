package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/history"
	"liftlog/workout-app/internal/service"
	"liftlog/workout-app/internal/session"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type StartSessionRequest struct {
	Type domain.WorkoutType `json:"type" binding:"required,oneof=Push Pull Legs Custom"`
}

type UpdateSetRequest struct {
	Reps      string `json:"reps"`
	Weight    string `json:"weight"`
	Completed bool   `json:"completed"`
}

type RenameExerciseRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddExerciseRequest struct {
	// Name quick-adds a suggested exercise; empty appends a blank one.
	Name string `json:"name"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

type SuggestionsResponse struct {
	Exercises []string `json:"exercises"`
}

// requireUsername resolves the authenticated username or aborts.
func requireUsername(c *gin.Context) (string, bool) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return "", false
	}
	return username, true
}

// respondSession maps service results and errors to HTTP responses shared
// by all session mutation endpoints.
func respondSession(c *gin.Context, sess *domain.WorkoutSession, err error) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSession):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrActiveSessionExists):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout session.")
		}
		return
	}
	c.JSON(http.StatusOK, sess)
}

// --- Active Session Endpoints ---

// StartSession begins a new workout from a routine template.
func (h *WorkoutHandler) StartSession(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	sess, err := h.workoutService.StartSession(c.Request.Context(), username, req.Type)
	if err != nil {
		if errors.Is(err, service.ErrActiveSessionExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to start workout session.")
		}
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// GetActiveSession returns the in-progress session, if any.
func (h *WorkoutHandler) GetActiveSession(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	sess, err := h.workoutService.ActiveSession(c.Request.Context(), username)
	respondSession(c, sess, err)
}

// UpdateSet replaces one set's logged values.
func (h *WorkoutHandler) UpdateSet(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	var req UpdateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// SetNumber is positional and immutable; only the logged values change.
	sess, err := h.workoutService.ActiveSession(c.Request.Context(), username)
	if err != nil {
		respondSession(c, nil, err)
		return
	}
	exerciseID := c.Param("exerciseId")
	setID := c.Param("setId")

	updated := domain.Set{ID: setID, Reps: req.Reps, Weight: req.Weight, Completed: req.Completed}
	for _, ex := range sess.Exercises {
		if ex.ID != exerciseID {
			continue
		}
		for _, set := range ex.Sets {
			if set.ID == setID {
				updated.SetNumber = set.SetNumber
			}
		}
	}

	sess, err = h.workoutService.UpdateSet(c.Request.Context(), username, exerciseID, updated)
	respondSession(c, sess, err)
}

// RenameExercise replaces an exercise's name only.
func (h *WorkoutHandler) RenameExercise(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	var req RenameExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	sess, err := h.workoutService.RenameExercise(c.Request.Context(), username, c.Param("exerciseId"), req.Name)
	respondSession(c, sess, err)
}

// AddSet appends a set to an exercise, prefilled from the previous set.
func (h *WorkoutHandler) AddSet(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	sess, err := h.workoutService.AddSet(c.Request.Context(), username, c.Param("exerciseId"))
	respondSession(c, sess, err)
}

// AddExercise appends a blank or suggested exercise to the active session.
func (h *WorkoutHandler) AddExercise(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	// An empty body is fine; it means "append a blank exercise".
	var req AddExerciseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}

	sess, err := h.workoutService.AddExercise(c.Request.Context(), username, req.Name)
	respondSession(c, sess, err)
}

// RemoveExercise deletes an exercise from the active session. The client is
// responsible for the user confirmation step; this call is irreversible.
func (h *WorkoutHandler) RemoveExercise(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}
	sess, err := h.workoutService.RemoveExercise(c.Request.Context(), username, c.Param("exerciseId"))
	respondSession(c, sess, err)
}

// CompleteSession freezes the active session and appends it to history.
func (h *WorkoutHandler) CompleteSession(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	sess, err := h.workoutService.CompleteSession(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			// Persisting failed; the session stays active and untouched.
			abortWithError(c, http.StatusBadGateway, "Failed to save completed workout.")
		}
		return
	}
	c.JSON(http.StatusOK, sess)
}

// DiscardSession drops the active session without saving.
func (h *WorkoutHandler) DiscardSession(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	if err := h.workoutService.DiscardSession(c.Request.Context(), username); err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to discard workout session.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSuggestions returns the quick-add exercise catalog.
func (h *WorkoutHandler) GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, SuggestionsResponse{Exercises: session.SuggestedExercises()})
}

// --- History Endpoints ---

// GetHistory lists completed sessions, newest-first, optionally windowed
// with ?window=week|month|year.
func (h *WorkoutHandler) GetHistory(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	window := history.ParseWindow(c.Query("window"))
	sessions, err := h.workoutService.History(c.Request.Context(), username, window)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout history.")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetStats aggregates the windowed history.
func (h *WorkoutHandler) GetStats(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	window := history.ParseWindow(c.Query("window"))
	stats, err := h.workoutService.Stats(c.Request.Context(), username, window)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute workout stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DeleteHistoryEntry removes one completed session. The client asks the
// user for confirmation first; here the delete is final.
func (h *WorkoutHandler) DeleteHistoryEntry(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	err := h.workoutService.DeleteSession(c.Request.Context(), username, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, "Failed to delete workout session.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetLastWeight reports the most recent weight used for ?exercise=<name>.
func (h *WorkoutHandler) GetLastWeight(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	exercise := c.Query("exercise")
	if exercise == "" {
		abortWithError(c, http.StatusBadRequest, "Missing 'exercise' query parameter.")
		return
	}

	result, err := h.workoutService.LastWeight(c.Request.Context(), username, exercise)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to look up last weight.")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStreak returns the current consecutive-day streak.
func (h *WorkoutHandler) GetStreak(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	streak, err := h.workoutService.Streak(c.Request.Context(), username)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute streak.")
		return
	}
	c.JSON(http.StatusOK, StreakResponse{Streak: streak})
}

// GetAchievements evaluates the achievement catalog fresh on every call.
func (h *WorkoutHandler) GetAchievements(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	evals, err := h.workoutService.Achievements(c.Request.Context(), username)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to evaluate achievements.")
		return
	}
	c.JSON(http.StatusOK, evals)
}
