package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/ports"
)

// AssistantService is the AI-assistant stub: keyword-matched canned
// answers over the NZ tax topics the product covers. No model is called.
type AssistantService struct {
	logger zerolog.Logger
}

func NewAssistantService(logger zerolog.Logger) *AssistantService {
	return &AssistantService{logger: logger}
}

type cannedAnswer struct {
	keywords []string
	topic    string
	answer   string
}

var cannedAnswers = []cannedAnswer{
	{
		keywords: []string{"gst", "goods and services"},
		topic:    "gst",
		answer: "The current GST rate in New Zealand is 15%. GST is charged on most goods and services. " +
			"If your business has revenue over $60,000 per year, you must register for GST with the IRD. " +
			"GST returns are typically filed every 2, 6, or 12 months depending on your registration.",
	},
	{
		keywords: []string{"kiwisaver"},
		topic:    "kiwisaver",
		answer: "KiwiSaver employee contributions start at 3% of gross pay, matched by a 3% employer " +
			"contribution. Both amounts are calculated on gross pay before PAYE is deducted.",
	},
	{
		keywords: []string{"paye", "income tax"},
		topic:    "paye",
		answer: "PAYE (Pay As You Earn) is income tax withheld from each employee's gross pay using the " +
			"IRD tax tables, and paid to the IRD on their behalf. Net pay is gross pay minus PAYE and " +
			"the employee's KiwiSaver contribution.",
	},
	{
		keywords: []string{"expense", "claim", "deduct"},
		topic:    "expenses",
		answer: "Common deductible business expenses include rent, utilities, office supplies, software " +
			"subscriptions, marketing, and equipment. Keep GST invoices for everything you claim.",
	},
	{
		keywords: []string{"invoice"},
		topic:    "invoices",
		answer: "A tax invoice must show your GST number, the date, a description of the goods or " +
			"services, and the GST-inclusive total. Invoices over $1,000 must also show the GST amount " +
			"separately.",
	},
	{
		keywords: []string{"due", "deadline", "when"},
		topic:    "deadlines",
		answer: "For two-monthly GST filers, returns and payment are due on the 28th of the month " +
			"following the end of the taxable period. Provisional tax dates depend on your balance date.",
	},
}

const fallbackAnswer = "I can help with GST, KiwiSaver, PAYE, invoicing, and deductible expenses. " +
	"Try asking about one of those topics, or check the IRD website for anything else."

func (s *AssistantService) Ask(_ context.Context, question string) (*ports.AssistantAnswer, error) {
	q := strings.ToLower(question)
	for _, canned := range cannedAnswers {
		for _, kw := range canned.keywords {
			if strings.Contains(q, kw) {
				s.logger.Debug().Str("topic", canned.topic).Msg("assistant answered")
				return &ports.AssistantAnswer{Topic: canned.topic, Answer: canned.answer}, nil
			}
		}
	}
	return &ports.AssistantAnswer{Topic: "general", Answer: fallbackAnswer}, nil
}
