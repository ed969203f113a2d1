package reading

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	apperrors "soultether/internal/errors"
	"soultether/internal/models"
	"soultether/pkg/utils"
)

const narrativeSystemPrompt = `You are a warm, insightful astrologer writing a short natal chart narrative.
You are given a precomputed reading with exact placements and Flower of Life node alignments.
Rewrite it as flowing prose in second person. Keep every position, degree, and orb exactly as given.
Do not invent placements that are not in the input. Two to four paragraphs.`

// NarrativeClient rewrites a rendered reading as prose via the OpenAI chat API.
// It is optional: the service works without it and every failure degrades to
// the template reading.
type NarrativeClient struct {
	client *openai.Client
	model  string
}

// NewNarrativeClient creates a client for the given API key and model.
func NewNarrativeClient(apiKey, model string) *NarrativeClient {
	return &NarrativeClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Narrate sends the template reading plus the alignment hits to the model and
// returns its prose rendition. Responses are never cached; identical charts
// may produce different prose across calls.
func (c *NarrativeClient) Narrate(ctx context.Context, reading string, hits []models.AlignmentHit) (string, error) {
	var b strings.Builder
	b.WriteString(reading)
	if len(hits) > 0 {
		b.WriteString("\nAlignments to emphasize:\n")
		for _, h := range hits {
			fmt.Fprintf(&b, "- %s at %.2f° (orb %.2f°, house %d)\n",
				h.Body, h.Longitude, h.Distance, h.House)
		}
	}

	retryCfg := utils.DefaultRetryConfig()
	retryCfg.MaxAttempts = 2
	resp, err := utils.RetryWithResult(ctx, retryCfg, func() (openai.ChatCompletionResponse, error) {
		return c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: narrativeSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: b.String()},
			},
		})
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrLLMUnavailable, err.Error())
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.Wrap(apperrors.ErrLLMUnavailable, "empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
