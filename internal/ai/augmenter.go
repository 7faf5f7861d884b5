package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"sitefactory/internal/ai/prompts"
	"sitefactory/internal/profile"
	"sitefactory/internal/types"
)

// ErrUnavailable reports that augmentation produced nothing usable. Missing
// credential, transport failure, empty response and unparseable payload all
// look the same to callers, who substitute the deterministic fallback. One
// attempt only; the augmenter never retries.
var ErrUnavailable = errors.New("ai augmentation unavailable")

const defaultTimeout = 15 * time.Second

// Augmenter wraps the OpenAI chat client behind the two wizard operations.
// A zero API key yields a disabled augmenter that fails fast.
type Augmenter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewAugmenter(apiKey, model string, timeout time.Duration) *Augmenter {
	a := &Augmenter{model: model, timeout: timeout}
	if a.model == "" {
		a.model = openai.GPT4oMini
	}
	if a.timeout <= 0 {
		a.timeout = defaultTimeout
	}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// AnalyzeProfile converts free-text answers into a StructuredProfile via one
// model round trip.
func (a *Augmenter) AnalyzeProfile(ctx context.Context, deepAnswers string, siteType types.SiteType, lang types.Language) (types.StructuredProfile, error) {
	raw, err := a.complete(ctx, prompts.AnalyzeProfile(deepAnswers, siteType, lang))
	if err != nil {
		return types.StructuredProfile{}, err
	}

	payload, err := extractObject(raw)
	if err != nil {
		slog.Warn("analyze: model output carried no JSON object", "err", err)
		return types.StructuredProfile{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var p types.StructuredProfile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		slog.Warn("analyze: model JSON did not match profile shape", "err", err)
		return types.StructuredProfile{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if p.Lang == "" {
		p.Lang = lang
	}
	return p, nil
}

// SuggestInspirations asks the model for count inspiration records shaped
// like the catalog rows. Missing ids are filled in so responses can be
// deduplicated downstream.
func (a *Augmenter) SuggestInspirations(ctx context.Context, p types.StructuredProfile, count int) ([]types.Inspiration, error) {
	personal := profile.Classify(p).AudienceCategory == profile.AudiencePersonal

	raw, err := a.complete(ctx, prompts.SuggestInspirations(p, count, personal))
	if err != nil {
		return nil, err
	}

	payload, err := extractArray(raw)
	if err != nil {
		slog.Warn("inspirations: model output carried no JSON array", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out []types.Inspiration
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		slog.Warn("inspirations: model JSON did not match inspiration shape", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	for i := range out {
		if out[i].ID == "" {
			out[i].ID = "ai_" + uuid.New().String()
		}
	}
	return out, nil
}

func (a *Augmenter) complete(ctx context.Context, prompt string) (string, error) {
	if a.client == nil {
		return "", fmt.Errorf("%w: no API key configured", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are an assistant that plans website content and responds with strictly formatted JSON."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		slog.Warn("openai chat completion failed", "err", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.Warn("openai returned an empty response", "usage", fmt.Sprintf("%+v", resp.Usage))
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
