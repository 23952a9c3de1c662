package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	_ "embed"

	"google.golang.org/genai"

	"github.com/hirewire/fitrank/pkg/logger"
)

const defaultModel = "gemini-2.5-flash"

//go:embed prompt.md
var promptTemplate string

// contentGenerator abstracts the model call so tests can stub it.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Gemini implements Judge on top of the Gemini API.
type Gemini struct {
	generator contentGenerator
	logger    logger.Logger
}

// Option applies a configuration option to the Gemini judge.
type Option func(*Gemini)

// WithLogger sets a custom logger for the judge.
func WithLogger(l logger.Logger) Option {
	return func(g *Gemini) {
		if l != nil {
			g.logger = l
		}
	}
}

// withGenerator swaps the model client; used by tests.
func withGenerator(gen contentGenerator) Option {
	return func(g *Gemini) {
		g.generator = gen
	}
}

// NewGemini creates a judge backed by the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string, opts ...Option) (*Gemini, error) {
	g := &Gemini{logger: logger.Named("judge")}
	for _, opt := range opts {
		opt(g)
	}
	if g.generator != nil {
		return g, nil
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	g.generator = &generator{client: client, model: model}
	return g, nil
}

// Compare asks the model to rate the overlap of candidate against target.
func (g *Gemini) Compare(ctx context.Context, candidate, target []string, hint string) (int, error) {
	if g == nil || g.generator == nil {
		return 0, ErrNotInitialized
	}

	prompt := buildPrompt(candidate, target, hint)
	raw, err := g.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return 0, err
	}

	g.logger.Debug(ctx, "judge response",
		logger.String("hint", hint),
		logger.String("raw", raw),
	)

	score, err := parseScore(raw)
	if err != nil {
		return 0, err
	}
	return score, nil
}

// generator is the live genai-backed contentGenerator.
type generator struct {
	client *genai.Client
	model  string
}

func (g *generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", ErrEmptyResponse
	}
	return output, nil
}

func buildPrompt(candidate, target []string, hint string) string {
	if strings.TrimSpace(hint) == "" {
		hint = "overall experience overlap"
	}
	prompt := strings.ReplaceAll(promptTemplate, "{{HINT}}", hint)
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE}}", bulletList(candidate))
	return strings.ReplaceAll(prompt, "{{TARGET}}", bulletList(target))
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "- none\n"
	}
	return b.String()
}

// parseScore extracts the integer score from a model response. The model
// is asked for bare JSON but fenced or prose-wrapped replies still occur.
func parseScore(raw string) (int, error) {
	cleaned := extractJSON(raw)

	// Bare number replies first.
	if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return clampScore(n), nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedScore, raw)
	}

	switch v := data["score"].(type) {
	case float64:
		return clampScore(v), nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedScore, raw)
		}
		return clampScore(n), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformedScore, raw)
	}
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

func clampScore(v float64) int {
	n := int(math.Round(v))
	if n < MinScore {
		return MinScore
	}
	if n > MaxScore {
		return MaxScore
	}
	return n
}
