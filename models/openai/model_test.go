package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danromik/Chatbots/models"
	"github.com/openai/openai-go/v2/option"
	"github.com/stretchr/testify/require"
)

const completionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1730366400,
	"model": "gpt-4o-mini",
	"choices": [
		{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": "4"}
		}
	],
	"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
}`

func TestCompletePassesPromptsVerbatim(t *testing.T) {
	var lastBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
	defer server.Close()

	model := NewModel(64, "4o-mini", "test-key", option.WithBaseURL(server.URL))
	result, err := model.Complete(context.Background(), models.Prompt{
		System: "You are a helpful math assistant",
		User:   "What is 2+2?",
	})
	require.NoError(t, err)

	var payload struct {
		Model               string `json:"model"`
		MaxCompletionTokens int    `json:"max_completion_tokens"`
		Messages            []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(lastBody, &payload))
	require.Equal(t, "gpt-4o-mini", payload.Model)
	require.Equal(t, 64, payload.MaxCompletionTokens)
	require.Len(t, payload.Messages, 2)
	require.Equal(t, "system", payload.Messages[0].Role)
	require.Equal(t, "You are a helpful math assistant", payload.Messages[0].Content)
	require.Equal(t, "user", payload.Messages[1].Role)
	require.Equal(t, "What is 2+2?", payload.Messages[1].Content)

	require.Equal(t, "4", result.Reply)
	require.Equal(t, 12, result.PromptTokens)
	require.Equal(t, 5, result.CompletionTokens)
	require.Equal(t, 17, result.TotalTokens())
	require.GreaterOrEqual(t, result.Elapsed, time.Duration(0))
	require.InDelta(t, 12*.15/1_000_000+5*.6/1_000_000, result.Cost, 1e-12)
}

func TestCompleteOmitsEmptySystemPrompt(t *testing.T) {
	var lastBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
	defer server.Close()

	model := NewModel(0, "4o-mini", "test-key", option.WithBaseURL(server.URL))
	_, err := model.Complete(context.Background(), models.Prompt{User: "hi"})
	require.NoError(t, err)

	var payload struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(lastBody, &payload))
	require.Len(t, payload.Messages, 1)
	require.Equal(t, "user", payload.Messages[0].Role)
}

func TestCompleteMissingCredential(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	model := NewModel(0, "4o-mini", "", option.WithBaseURL(server.URL))
	_, err := model.Complete(context.Background(), models.Prompt{User: "hi"})

	var authErr *models.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Zero(t, calls, "a missing credential must not produce a network call")
}

func TestCompleteAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	model := NewModel(0, "4o-mini", "bad-key", option.WithBaseURL(server.URL))
	_, err := model.Complete(context.Background(), models.Prompt{User: "hi"})

	var authErr *models.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestCompleteAPIError(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "The server had an error", "type": "server_error"}}`))
	}))
	defer server.Close()

	model := NewModel(0, "4o-mini", "test-key", option.WithBaseURL(server.URL))
	_, err := model.Complete(context.Background(), models.Prompt{User: "hi"})

	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, 1, calls, "the request must never be retried")
}

func TestCompleteNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	model := NewModel(0, "4o-mini", "test-key", option.WithBaseURL(url))
	_, err := model.Complete(context.Background(), models.Prompt{User: "hi"})

	var netErr *models.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestValidateModelName(t *testing.T) {
	require.NoError(t, ValidateModelName("4o-mini"))
	require.NoError(t, ValidateModelName(DefaultModel))
	require.Error(t, ValidateModelName("gpt-9"))
	require.Error(t, ValidateModelName(""))
}
