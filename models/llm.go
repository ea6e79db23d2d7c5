/*
 * Defines the provider-agnostic types exchanged between the input capture,
 * the completion client, and the reporter
 */
package models

import (
	"fmt"
	"time"
)

// Prompt pairs the static system prompt with a single user prompt. One is
// built per submission; an aborted capture never produces one.
type Prompt struct {
	System string
	User   string
}

// Result holds everything the reporter prints about one completed exchange.
type Result struct {
	Reply            string
	PromptTokens     int
	CompletionTokens int
	Elapsed          time.Duration
	Cost             float64
}

func (r *Result) TotalTokens() int {
	return r.PromptTokens + r.CompletionTokens
}

// Pricing defines costs per input or output token. They should be defined as `(cost per million) / 1,000,000`
type Pricing struct {
	PromptCost   float64 // per token
	ResponseCost float64 // per token
}

// AuthError means the API credential was missing or rejected by the provider.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error: %v", e.Err)
	}
	return fmt.Sprintf("auth error: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// NetworkError covers connectivity and timeout failures, anything where no
// well-formed response came back from the provider.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-success response from the provider.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (HTTP %d)", e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.Err }
