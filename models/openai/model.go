/*
 * Implements the single request/response exchange with the OpenAI API
 */
package openai

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/danromik/Chatbots/models"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// OpenAIModel performs synchronous, non-streaming chat completions.
type OpenAIModel struct {
	Client      openai.Client
	ModelConfig OpenAIModelConfig
	MaxTokens   int

	apiKey string
}

// NewModel builds a client for the given model shorthand. The credential is
// carried on the struct rather than read from a global so its absence can be
// reported at request time. Extra request options are for tests.
func NewModel(maxTokens int, modelName, apiKey string, opts ...option.RequestOption) *OpenAIModel {
	// the SDK retries failed requests on its own unless told not to
	clientOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	}
	clientOpts = append(clientOpts, opts...)

	return &OpenAIModel{
		Client:      openai.NewClient(clientOpts...),
		ModelConfig: OpenAIModelConfigurations[modelName],
		MaxTokens:   maxTokens,
		apiKey:      apiKey,
	}
}

// Complete sends the system and user prompts in one chat completion request
// and maps the reply text and token usage into a models.Result. The prompts
// are passed through verbatim. No retries.
func (m *OpenAIModel) Complete(ctx context.Context, prompt models.Prompt) (*models.Result, error) {
	if m.apiKey == "" {
		return nil, &models.AuthError{Reason: "OPENAI_API_KEY is not set. Add it to a .env file in this project"}
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if prompt.System != "" {
		messages = append(messages, openai.SystemMessage(prompt.System))
	}
	messages = append(messages, openai.UserMessage(prompt.User))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(m.ModelConfig.Id),
		Messages: messages,
	}
	if m.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(m.MaxTokens))
	}

	log.Printf("completion request: model=%s system=%dB user=%dB", m.ModelConfig.Id, len(prompt.System), len(prompt.User))

	start := time.Now()
	completion, err := m.Client.Chat.Completions.New(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		return nil, classify(err)
	}
	if len(completion.Choices) == 0 {
		return nil, &models.APIError{Message: "response contained no choices"}
	}

	result := &models.Result{
		Reply:            completion.Choices[0].Message.Content,
		PromptTokens:     int(completion.Usage.PromptTokens),
		CompletionTokens: int(completion.Usage.CompletionTokens),
		Elapsed:          elapsed,
	}
	result.Cost = float64(result.PromptTokens)*m.ModelConfig.PromptCost +
		float64(result.CompletionTokens)*m.ModelConfig.ResponseCost

	log.Printf("completion ok: duration=%s prompt_tokens=%d completion_tokens=%d",
		elapsed, result.PromptTokens, result.CompletionTokens)
	return result, nil
}

// classify maps SDK errors onto the error kinds the reporter knows how to
// display. Anything without an HTTP status is a transport failure.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return &models.AuthError{Err: err}
		default:
			return &models.APIError{StatusCode: apiErr.StatusCode, Message: apiErr.Message, Err: err}
		}
	}
	return &models.NetworkError{Err: err}
}
