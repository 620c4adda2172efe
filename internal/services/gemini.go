package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"alfredoptarigan/ats-checker/internal/config"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	timeout     time.Duration
	logger      *slog.Logger
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		logger:      logger.With("model", cfg.Model),
	}, nil
}

func (g *geminiService) ModelName() string {
	return g.modelName
}

// GenerateText sends a single prompt and returns the reply text. It makes
// exactly one attempt. An empty reply is returned as is.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		g.logger.Error("❌ Gemini API error", "error", err, "elapsed", time.Since(start))
		return "", fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrModelUnavailable)
	}

	text := resp.Text()
	if text == "" {
		var finishReason genai.FinishReason
		if len(resp.Candidates) > 0 {
			finishReason = resp.Candidates[0].FinishReason
		}
		g.logger.Warn("⚠️ Gemini returned no text", "finish_reason", finishReason, "candidates", len(resp.Candidates))
	}

	g.logger.Debug("📊 Gemini response received", "chars", len(text), "elapsed", time.Since(start))
	return text, nil
}
