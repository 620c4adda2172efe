package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/ats-checker/internal/models"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, jobDescription string, resume *models.ResumeFile) (*models.Analysis, error)
	AnalyzeText(ctx context.Context, req models.AnalysisRequest) (*models.Analysis, error)
	BuildPrompt(jobDescription string, resume *models.ResumeFile) (string, error)
}

type analyzerService struct {
	geminiService GeminiService
	resumeParser  ResumeParserService
	promptBuilder *PromptBuilder
	logger        *slog.Logger
}

func NewAnalyzerService(
	geminiService GeminiService,
	resumeParser ResumeParserService,
	logger *slog.Logger,
) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		resumeParser:  resumeParser,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

// AnalyzeResume extracts the resume text and scores it against the job
// description. A missing resume is rejected before anything else runs.
func (a *analyzerService) AnalyzeResume(ctx context.Context, jobDescription string, resume *models.ResumeFile) (*models.Analysis, error) {
	resumeText, err := a.extractResumeText(resume)
	if err != nil {
		return nil, err
	}

	return a.AnalyzeText(ctx, models.AnalysisRequest{
		JobDescription: jobDescription,
		ResumeText:     resumeText,
	})
}

// AnalyzeText runs one model call and parses the reply. Upstream failures are
// returned as errors; an unparseable reply is an ExtractionFailure outcome.
func (a *analyzerService) AnalyzeText(ctx context.Context, req models.AnalysisRequest) (*models.Analysis, error) {
	analysis := &models.Analysis{
		ID:          uuid.New(),
		ResumeChars: len(req.ResumeText),
	}
	logger := a.logger.With("analysis_id", analysis.ID.String())

	prompt := a.promptBuilder.BuildATSPrompt(req.JobDescription, req.ResumeText)
	logger.Info("🤖 Analyzing resume with LLM",
		"model", a.geminiService.ModelName(),
		"resume_chars", analysis.ResumeChars,
		"prompt_chars", len(prompt),
	)

	start := time.Now()
	raw, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		logger.Error("❌ Analysis failed", "error", err)
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}

	analysis.RawResponse = raw
	analysis.Outcome = ExtractAnalysis(raw)
	analysis.Duration = time.Since(start)

	switch outcome := analysis.Outcome.(type) {
	case models.AnalysisResult:
		logger.Info("✅ Analysis completed",
			"jd_match", outcome.JDMatch,
			"missing_keywords", len(outcome.MissingKeywords),
			"elapsed", analysis.Duration,
		)
	case models.ExtractionFailure:
		logger.Warn("⚠️ AI response was not in valid JSON format",
			"reason", outcome.Reason,
			"raw_chars", len(outcome.RawResponse),
			"elapsed", analysis.Duration,
		)
	}

	return analysis, nil
}

// BuildPrompt returns the prompt that would be sent for this submission
// without calling the model.
func (a *analyzerService) BuildPrompt(jobDescription string, resume *models.ResumeFile) (string, error) {
	resumeText, err := a.extractResumeText(resume)
	if err != nil {
		return "", err
	}
	return a.promptBuilder.BuildATSPrompt(jobDescription, resumeText), nil
}

func (a *analyzerService) extractResumeText(resume *models.ResumeFile) (string, error) {
	if resume == nil {
		return "", ErrMissingResume
	}

	a.logger.Debug("📄 Parsing resume", "filename", resume.Filename, "bytes", resume.Size())
	text, err := a.resumeParser.ExtractText(resume)
	if err != nil {
		return "", fmt.Errorf("failed to parse resume: %w", err)
	}
	if text == "" {
		a.logger.Warn("⚠️ No text extracted from resume", "filename", resume.Filename)
	}

	return text, nil
}
