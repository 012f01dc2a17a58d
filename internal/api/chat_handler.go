package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"liftlog/workout-app/internal/service"
)

// ChatHandler holds the advisor service dependency.
type ChatHandler struct {
	advisorService service.AdvisorService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(advisorService service.AdvisorService) *ChatHandler {
	return &ChatHandler{advisorService: advisorService}
}

// --- DTOs ---

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// --- Handler Methods ---

// Ask relays a single chat message to the AI coach. Prior turns are for
// local display only; nothing but this message is sent upstream.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	reply, err := h.advisorService.Ask(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
