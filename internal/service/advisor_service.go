package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"liftlog/workout-app/internal/advisor"
)

// --- Error Definitions ---
var (
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrAdvisorCall  = errors.New("the coach is unavailable right now, please try again")
)

// DemoFallbackMessage is returned instead of an error when no generation
// API key is configured. Reduced functionality, not an error state.
const DemoFallbackMessage = "The AI coach is not available in demo mode. " +
	"Configure an API key to enable chat."

// AdvisorService relays chat messages to the advisory gateway.
type AdvisorService interface {
	Ask(ctx context.Context, message string) (string, error)
}

// advisorService implements the AdvisorService interface. client may be nil
// when the generation API is not configured.
type advisorService struct {
	client advisor.Advisor
}

// NewAdvisorService creates a new instance of advisorService.
func NewAdvisorService(client advisor.Advisor) AdvisorService {
	return &advisorService{client: client}
}

// Ask sends one message and returns the reply, or the static fallback when
// the gateway is not configured.
func (s *advisorService) Ask(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if s.client == nil {
		return DemoFallbackMessage, nil
	}

	reply, err := s.client.Advise(ctx, message)
	if err != nil {
		// The remote failure detail stays in server logs; the caller gets a
		// localized message and no state change.
		log.Printf("ERROR: advisor call failed: %v", err)
		return "", ErrAdvisorCall
	}
	return reply, nil
}
