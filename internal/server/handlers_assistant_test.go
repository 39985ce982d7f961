package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohan/learnfast/internal/assistant"
	"github.com/rohan/learnfast/internal/types"
)

// stubAssistant echoes a canned reply and records the last call.
type stubAssistant struct {
	reply     string
	lastMsg   string
	lastSched *assistant.ScheduleContext
}

func (a *stubAssistant) Chat(_ context.Context, message string, sched *assistant.ScheduleContext) (string, error) {
	a.lastMsg = message
	a.lastSched = sched
	return a.reply, nil
}

func (a *stubAssistant) Close() error { return nil }

func TestAssistantChat(t *testing.T) {
	ts := newTestServer(t)
	stub := &stubAssistant{reply: "You have two videos left today."}
	ts.assistant = stub
	_, token := ts.authedUser(t)

	rec := ts.request(t, http.MethodPost, "/api/assistant/chat", token, types.AssistantChatRequest{
		Message: "What is left for today?",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	response := decodeJSON[types.AssistantChatResponse](t, rec)
	assert.Equal(t, "You have two videos left today.", response.Reply)
	assert.Equal(t, "What is left for today?", stub.lastMsg)
	assert.Nil(t, stub.lastSched)
}

func TestAssistantChat_WithSchedule(t *testing.T) {
	ts := newTestServer(t)
	stub := &stubAssistant{reply: "ok"}
	ts.assistant = stub
	_, token := ts.authedUser(t)

	rec := ts.request(t, http.MethodPost, "/api/schedules", token, dailyRequest(1))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON[planResponse](t, rec)

	rec = ts.request(t, http.MethodPost, "/api/assistant/chat", token, types.AssistantChatRequest{
		Message:    "How am I doing?",
		ScheduleID: created.ID.String(),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, stub.lastSched)
	assert.Equal(t, "Test Course", stub.lastSched.Title)
	require.NotNil(t, stub.lastSched.Plan)
	assert.Len(t, stub.lastSched.Plan.Days, 3)
}

func TestAssistantChat_UnknownSchedule(t *testing.T) {
	ts := newTestServer(t)
	ts.assistant = &stubAssistant{reply: "ok"}
	_, token := ts.authedUser(t)

	rec := ts.request(t, http.MethodPost, "/api/assistant/chat", token, types.AssistantChatRequest{
		Message:    "hello",
		ScheduleID: "5a2f1d9e-0000-4000-8000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssistantChat_NotConfigured(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.authedUser(t)

	rec := ts.request(t, http.MethodPost, "/api/assistant/chat", token, types.AssistantChatRequest{
		Message: "hello",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
