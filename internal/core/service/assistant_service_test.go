package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestAssistantService_Ask(t *testing.T) {
	svc := NewAssistantService(zerolog.Nop())

	cases := []struct {
		question  string
		wantTopic string
	}{
		{"What is the GST rate?", "gst"},
		{"How much KiwiSaver do I contribute?", "kiwisaver"},
		{"Explain PAYE for my employees", "paye"},
		{"What expenses can I claim?", "expenses"},
		{"What must appear on an invoice?", "invoices"},
		{"When is my return due?", "deadlines"},
		{"Tell me about cryptocurrency", "general"},
	}

	for _, tc := range cases {
		answer, err := svc.Ask(context.Background(), tc.question)
		if err != nil {
			t.Fatalf("ask %q: %v", tc.question, err)
		}
		if answer.Topic != tc.wantTopic {
			t.Fatalf("ask %q: got topic %q, want %q", tc.question, answer.Topic, tc.wantTopic)
		}
		if answer.Answer == "" {
			t.Fatalf("ask %q: empty answer", tc.question)
		}
	}
}

func TestAssistantService_Ask_CaseInsensitive(t *testing.T) {
	svc := NewAssistantService(zerolog.Nop())

	answer, err := svc.Ask(context.Background(), "KIWISAVER rates please")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer.Topic != "kiwisaver" {
		t.Fatalf("got topic %q, want kiwisaver", answer.Topic)
	}
	if !strings.Contains(answer.Answer, "3%") {
		t.Fatalf("expected rate in answer: %q", answer.Answer)
	}
}
