// Package services holds clients for external collaborators.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeneratorError describes a failed generator call.
type GeneratorError struct {
	Operation string
	Message   string
	Err       error
}

func (e *GeneratorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gemini %s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("gemini %s: %s", e.Operation, e.Message)
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}

// GeminiService calls the Gemini generateContent API. It satisfies
// chat.Generator.
type GeminiService struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewGeminiService creates a Gemini client. timeout bounds every
// generate call; a timed-out call is reported as a generator failure.
func NewGeminiService(apiKey, model string, timeout time.Duration) *GeminiService {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(3 * time.Second)

	return &GeminiService{
		client: client,
		apiKey: apiKey,
		model:  model,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first candidate's text.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	var out geminiResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("/models/%s:generateContent", s.model))

	if err != nil {
		return "", &GeneratorError{Operation: "generate", Message: "request failed", Err: err}
	}
	if resp.IsError() {
		return "", &GeneratorError{
			Operation: "generate",
			Message:   fmt.Sprintf("unexpected status %d", resp.StatusCode()),
		}
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", &GeneratorError{Operation: "generate", Message: "empty response"}
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
