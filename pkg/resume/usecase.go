package resume

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/artem13815/resume-analyzer/pkg/llm"
)

// Service runs the extract-analyze-normalize pipeline. It tries the primary
// model first and falls back to the secondary one exactly once, and only
// when the primary failed on quota. Any other failure surfaces immediately.
type Service struct {
	model    llm.ChatModel
	primary  string
	fallback string
	log      zerolog.Logger
}

func NewService(model llm.ChatModel, primaryModel, fallbackModel string, log zerolog.Logger) *Service {
	return &Service{
		model:    model,
		primary:  primaryModel,
		fallback: fallbackModel,
		log:      log,
	}
}

// Analyze extracts text from a PDF buffer and produces a normalized analysis.
func (s *Service) Analyze(ctx context.Context, data []byte) (Analysis, error) {
	text, err := ExtractText(data)
	if err != nil {
		return Analysis{}, err
	}
	return s.AnalyzeText(ctx, text)
}

// AnalyzeText runs the model pipeline over already-extracted resume text.
func (s *Service) AnalyzeText(ctx context.Context, text string) (Analysis, error) {
	prompt := buildPrompt(text)

	a, err := s.analyzeWithModel(ctx, s.primary, prompt)
	if err == nil {
		return a, nil
	}
	if !llm.IsQuota(err) {
		return Analysis{}, err
	}
	s.log.Warn().Str("model", s.primary).Err(err).Msg("primary model quota exhausted, trying fallback")
	a, ferr := s.analyzeWithModel(ctx, s.fallback, prompt)
	if ferr != nil {
		return Analysis{}, fmt.Errorf("analysis failed on both %s and %s: %w", s.primary, s.fallback, ferr)
	}
	return a, nil
}

func (s *Service) analyzeWithModel(ctx context.Context, model, prompt string) (Analysis, error) {
	reply, err := s.model.Generate(ctx, model, prompt)
	if err != nil {
		return Analysis{}, err
	}
	raw, err := parseAnalysisResponse(reply)
	if err != nil {
		return Analysis{}, err
	}
	return normalizeAnalysis(raw), nil
}
