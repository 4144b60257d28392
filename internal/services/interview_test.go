package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/career-assistant/internal/models"
)

func newTestInterview(mock *mockGemini) InterviewService {
	return NewInterviewService(NewAssistantService(mock))
}

func TestInterviewStart(t *testing.T) {
	svc := newTestInterview(&mockGemini{})

	id, opening := svc.Start("Jane", "Backend Engineer")

	assert.NotEmpty(t, id)
	assert.Equal(t, models.ChatRoleModel, opening.Role)
	assert.Contains(t, opening.Text, "Hello Jane!")
	assert.Contains(t, opening.Text, "Backend Engineer")

	turns, err := svc.History(id)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, opening, turns[0])
}

func TestInterviewStart_DefaultRole(t *testing.T) {
	svc := newTestInterview(&mockGemini{})

	_, opening := svc.Start("Jane", "")
	assert.Contains(t, opening.Text, "applying for a role")
}

func TestInterviewSubmit_AppendsUserThenModelTurn(t *testing.T) {
	mock := &mockGemini{textResponse: "Interesting. What is your biggest strength?"}
	svc := newTestInterview(mock)

	id, _ := svc.Start("Jane", "Backend Engineer")

	reply, err := svc.Submit(context.Background(), id, "I have 3 years of experience")
	require.NoError(t, err)
	assert.Equal(t, models.ChatRoleModel, reply.Role)
	assert.Equal(t, "Interesting. What is your biggest strength?", reply.Text)

	turns, err := svc.History(id)
	require.NoError(t, err)
	require.Len(t, turns, 3, "opening + user turn + model turn")
	assert.Equal(t, models.ChatRoleUser, turns[1].Role)
	assert.Equal(t, "I have 3 years of experience", turns[1].Text)
	assert.Equal(t, reply, turns[2])
}

func TestInterviewSubmit_SendsRoleAndHistoryToModel(t *testing.T) {
	mock := &mockGemini{textResponse: "Next question."}
	svc := newTestInterview(mock)

	id, opening := svc.Start("Jane", "Backend Engineer")

	_, err := svc.Submit(context.Background(), id, "Hi, I am Jane.")
	require.NoError(t, err)

	require.Len(t, mock.textCalls, 1)
	parts := mock.textCalls[0].contents[0].Parts
	require.Len(t, parts, 3, "instruction + opening turn + new message")
	assert.Contains(t, parts[0].Text, "role of Backend Engineer")
	assert.Equal(t, "model: "+opening.Text, parts[1].Text)
	assert.Equal(t, "user: Hi, I am Jane.", parts[2].Text)
}

func TestInterviewSubmit_UnknownSession(t *testing.T) {
	svc := newTestInterview(&mockGemini{})

	_, err := svc.Submit(context.Background(), "no-such-session", "hello")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestInterviewSubmit_RejectsConcurrentSubmit(t *testing.T) {
	release := make(chan struct{})
	inFlight := make(chan struct{})
	var once sync.Once

	mock := &mockGemini{
		textResponse: "Reply.",
		textHook: func() {
			once.Do(func() { close(inFlight) })
			<-release
		},
	}
	svc := newTestInterview(mock)

	id, _ := svc.Start("Jane", "Backend Engineer")

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = svc.Submit(context.Background(), id, "first answer")
	}()

	select {
	case <-inFlight:
	case <-time.After(2 * time.Second):
		t.Fatal("first submit never reached the model")
	}

	_, err := svc.Submit(context.Background(), id, "second answer")
	assert.ErrorIs(t, err, ErrSessionBusy)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)

	// After the in-flight submit completes, the session accepts again.
	_, err = svc.Submit(context.Background(), id, "third answer")
	assert.NoError(t, err)
}

func TestInterviewEnd(t *testing.T) {
	svc := newTestInterview(&mockGemini{})

	id, _ := svc.Start("Jane", "Backend Engineer")
	svc.End(id)

	_, err := svc.History(id)
	assert.ErrorIs(t, err, ErrNoSession)

	// Ending twice is a no-op.
	svc.End(id)
}
