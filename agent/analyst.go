package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst is a chat with a market analyst grounded by Google Search.
type Analyst struct {
	chat *genai.Chat
}

// NewAnalyst creates the analyst chat, scoped to the supplied daily report:
// it comments the figures in the report and is not a source of investment
// advice.
func NewAnalyst(ctx context.Context, client *genai.Client, report string) (*Analyst, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You are a market analyst commenting an end-of-day watchlist report.
		The report below is the only portfolio context you have; do not invent
		positions or figures that are not in it.

		Use Google Search to relate the day's moves to recent news about the
		tickers and sectors in the report. Be factual and concise. Never give
		investment advice.

		The report:

		` + report}}},
	}

	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot start analyst chat: %w", err)
	}
	return &Analyst{chat: chat}, nil
}

// Ask sends one question and returns the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
