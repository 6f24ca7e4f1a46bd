package impl

import (
	"context"
	"strings"
	"sync"

	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/domain/service"
	"staradmin/internal/usecase"
)

const maxChatHistory = 50

// assistantService implements the AssistantUsecase interface, keeping
// a per-process chat transcript.
type assistantService struct {
	assistant service.Assistant

	mu      sync.Mutex
	history []usecase.ChatMessage
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(assistant service.Assistant) usecase.AssistantUsecase {
	return &assistantService{assistant: assistant}
}

// Ask answers one message and appends the exchange to the history.
func (srv *assistantService) Ask(ctx context.Context, message string) (usecase.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return usecase.ChatMessage{}, domainerrors.ErrInvalidInput.WithDetails("empty chat message")
	}

	reply := srv.assistant.Reply(ctx, message)
	answer := usecase.ChatMessage{Role: "assistant", Text: reply.Text, Offline: reply.Offline}

	srv.mu.Lock()
	srv.history = append(srv.history,
		usecase.ChatMessage{Role: "user", Text: message},
		answer,
	)
	if len(srv.history) > maxChatHistory {
		srv.history = srv.history[len(srv.history)-maxChatHistory:]
	}
	srv.mu.Unlock()

	return answer, nil
}

// History returns the session's chat transcript, oldest first.
func (srv *assistantService) History() []usecase.ChatMessage {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	out := make([]usecase.ChatMessage, len(srv.history))
	copy(out, srv.history)

	return out
}

// Reset clears the transcript.
func (srv *assistantService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.history = nil
}
