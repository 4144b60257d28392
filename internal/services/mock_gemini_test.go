package services

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// mockGemini is a scripted GeminiService that records every call so
// tests can assert call counts, part ordering and temperatures.
type mockGemini struct {
	mu sync.Mutex

	textResponse string
	textErr      error
	jsonResponse string
	jsonErr      error
	embedding    []float32
	embedErr     error

	// textHook runs inside GenerateText while the call is in flight,
	// letting tests exercise concurrent submissions.
	textHook func()

	textCalls  []recordedCall
	jsonCalls  []recordedCall
	embedCalls []string
}

type recordedCall struct {
	contents    []*genai.Content
	temperature float32
	schema      *genai.Schema
}

func (m *mockGemini) GenerateText(ctx context.Context, contents []*genai.Content, temperature float32) (string, error) {
	m.mu.Lock()
	m.textCalls = append(m.textCalls, recordedCall{contents: contents, temperature: temperature})
	hook := m.textHook
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	if m.textErr != nil {
		return "", m.textErr
	}
	return m.textResponse, nil
}

func (m *mockGemini) GenerateJSON(ctx context.Context, contents []*genai.Content, schema *genai.Schema) (string, error) {
	m.mu.Lock()
	m.jsonCalls = append(m.jsonCalls, recordedCall{contents: contents, schema: schema})
	m.mu.Unlock()

	if m.jsonErr != nil {
		return "", m.jsonErr
	}
	return m.jsonResponse, nil
}

func (m *mockGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.embedCalls = append(m.embedCalls, text)
	m.mu.Unlock()

	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.embedding, nil
}

func (m *mockGemini) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.textCalls) + len(m.jsonCalls) + len(m.embedCalls)
}
