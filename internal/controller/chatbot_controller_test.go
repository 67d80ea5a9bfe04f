package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/dto"
	"medicine-chatbot-be/internal/pkg/serverutils"
)

type mockChatbotService struct {
	mock.Mock
}

func (m *mockChatbotService) Handle(ctx context.Context, question, userID string) (string, int) {
	args := m.Called(question, userID)
	return args.String(0), args.Int(1)
}

func (m *mockChatbotService) Reset(ctx context.Context, userID string) (string, int) {
	args := m.Called(userID)
	return args.String(0), args.Int(1)
}

func (m *mockChatbotService) Health(ctx context.Context) *dto.HealthResponse {
	return m.Called().Get(0).(*dto.HealthResponse)
}

func newTestApp(svc *mockChatbotService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatbotController(svc).RegisterRoutes(app)
	return app
}

func decodeReply(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ChatResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Reply
}

func TestChat_Get(t *testing.T) {
	svc := &mockChatbotService{}
	svc.On("Handle", "What is aspirin?", "u1").Return("Aspirin is an NSAID.", http.StatusOK)
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/chat?question="+url.QueryEscape("What is aspirin?"), nil)
	req.Header.Set(UserIDHeader, "u1")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Aspirin is an NSAID.", decodeReply(t, resp))
	svc.AssertExpectations(t)
}

func TestChat_PostPropagatesStatus(t *testing.T) {
	svc := &mockChatbotService{}
	svc.On("Handle", "hello", "").Return(constant.GeneralErrorMessage, http.StatusInternalServerError)
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"question":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, constant.GeneralErrorMessage, decodeReply(t, resp))
}

func TestChat_MissingQuestion(t *testing.T) {
	svc := &mockChatbotService{}
	app := newTestApp(svc)

	for _, target := range []string{"/chat", "/chat?question=%20%20"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, constant.MissingQuestionMessage, decodeReply(t, resp))
	}
	svc.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestReset(t *testing.T) {
	svc := &mockChatbotService{}
	svc.On("Reset", "u9").Return(constant.ResetConfirmationMessage, http.StatusOK)
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/chat/reset", nil)
	req.Header.Set(UserIDHeader, "u9")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constant.ResetConfirmationMessage, decodeReply(t, resp))
}

func TestHealth(t *testing.T) {
	up := &mockChatbotService{}
	up.On("Health").Return(&dto.HealthResponse{Status: "ok", ChatAvailable: true, Drugs: 2})
	resp, err := newTestApp(up).Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	down := &mockChatbotService{}
	down.On("Health").Return(&dto.HealthResponse{Status: "unavailable"})
	resp, err = newTestApp(down).Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
