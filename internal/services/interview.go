package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"careerpilot/career-assistant/internal/models"
)

// InterviewService manages in-memory mock-interview sessions. A session
// holds the role title and the append-only sequence of turns; it lives
// only for the duration of the interview and is discarded on End.
type InterviewService interface {
	Start(profileName, targetRole string) (string, models.ChatTurn)
	Submit(ctx context.Context, sessionID, message string) (models.ChatTurn, error)
	History(sessionID string) ([]models.ChatTurn, error)
	End(sessionID string)
}

type interviewSession struct {
	mu    sync.Mutex
	busy  bool
	role  string
	turns []models.ChatTurn
}

type interviewService struct {
	assistant AssistantService

	mu       sync.RWMutex
	sessions map[string]*interviewSession
}

func NewInterviewService(assistant AssistantService) InterviewService {
	return &interviewService{
		assistant: assistant,
		sessions:  make(map[string]*interviewSession),
	}
}

// Start implements InterviewService. It seeds the session with a single
// synthetic model turn and performs no model call.
func (s *interviewService) Start(profileName, targetRole string) (string, models.ChatTurn) {
	role := targetRole
	if role == "" {
		role = "a role"
	}

	opening := models.ChatTurn{
		Role: models.ChatRoleModel,
		Text: fmt.Sprintf("Hello %s! I am your AI interviewer. I see you are applying for %s. Shall we begin with a brief introduction about yourself?", profileName, role),
	}

	session := &interviewSession{
		role:  targetRole,
		turns: []models.ChatTurn{opening},
	}

	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return id, opening
}

// Submit implements InterviewService. Exactly one submit may be in
// flight per session; concurrent calls are rejected with ErrSessionBusy
// instead of interleaving turns.
func (s *interviewService) Submit(ctx context.Context, sessionID, message string) (models.ChatTurn, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return models.ChatTurn{}, err
	}

	session.mu.Lock()
	if session.busy {
		session.mu.Unlock()
		return models.ChatTurn{}, ErrSessionBusy
	}
	session.busy = true
	history := make([]models.ChatTurn, len(session.turns))
	copy(history, session.turns)
	session.turns = append(session.turns, models.ChatTurn{Role: models.ChatRoleUser, Text: message})
	role := session.role
	session.mu.Unlock()

	defer func() {
		session.mu.Lock()
		session.busy = false
		session.mu.Unlock()
	}()

	text, err := s.assistant.InterviewReply(ctx, role, history, message)
	if err != nil {
		return models.ChatTurn{}, err
	}

	reply := models.ChatTurn{Role: models.ChatRoleModel, Text: text}
	session.mu.Lock()
	session.turns = append(session.turns, reply)
	session.mu.Unlock()

	return reply, nil
}

// History implements InterviewService.
func (s *interviewService) History(sessionID string) ([]models.ChatTurn, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	turns := make([]models.ChatTurn, len(session.turns))
	copy(turns, session.turns)
	return turns, nil
}

// End implements InterviewService. Ending an unknown session is a no-op.
func (s *interviewService) End(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *interviewService) lookup(sessionID string) (*interviewSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	return session, nil
}
