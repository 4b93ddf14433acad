package ports

import "context"

// AssistantAnswer is a canned response from the assistant stub.
type AssistantAnswer struct {
	Topic  string
	Answer string
}

// AssistantService is the AI-assistant stub: keyword-matched canned
// answers, no inference.
type AssistantService interface {
	Ask(ctx context.Context, question string) (*AssistantAnswer, error)
}
