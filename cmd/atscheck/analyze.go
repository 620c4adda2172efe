package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alfredoptarigan/ats-checker/internal/config"
	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

var errExtractionFailed = errors.New("AI response was not in valid JSON format")

type inputFlags struct {
	jdPath     string
	jdText     string
	resumePath string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.jdPath, "jd", "", "job description file, or - for stdin")
	cmd.Flags().StringVar(&f.jdText, "jd-text", "", "job description given inline")
	cmd.Flags().StringVarP(&f.resumePath, "resume", "r", "", "resume file (.pdf or .docx)")
	cmd.MarkFlagsMutuallyExclusive("jd", "jd-text")
	_ = cmd.MarkFlagRequired("resume")
}

func (f *inputFlags) jobDescription(stdin io.Reader) (string, error) {
	switch f.jdPath {
	case "":
		return f.jdText, nil
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read job description from stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(f.jdPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(b), nil
	}
}

func (f *inputFlags) resume() (*models.ResumeFile, error) {
	data, err := os.ReadFile(f.resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	return &models.ResumeFile{
		Filename: filepath.Base(f.resumePath),
		Data:     data,
	}, nil
}

func newAnalyzeCmd() *cobra.Command {
	var (
		input   inputFlags
		showRaw bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a resume and print the match score, missing keywords and summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg)

			jd, err := input.jobDescription(cmd.InOrStdin())
			if err != nil {
				return err
			}
			resume, err := input.resume()
			if err != nil {
				return err
			}

			ctx := context.Background()
			geminiService, err := services.NewGeminiService(ctx, cfg.Gemini, logger)
			if err != nil {
				return err
			}
			analyzer := services.NewAnalyzerService(geminiService, services.NewResumeParserService(), logger)

			analysis, err := analyzer.AnalyzeResume(ctx, jd, resume)
			if err != nil {
				return err
			}

			showRaw = showRaw || cfg.Debug.RawResponse
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(models.NewAnalyzeResponse(analysis, showRaw)); err != nil {
					return err
				}
			} else {
				renderAnalysis(out, analysis, showRaw)
			}

			if _, failed := analysis.Failure(); failed {
				return errExtractionFailed
			}
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().BoolVar(&showRaw, "raw", false, "also print the raw model response")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func newPromptCmd() *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt that would be sent to the model, without calling it",
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := input.jobDescription(cmd.InOrStdin())
			if err != nil {
				return err
			}
			resume, err := input.resume()
			if err != nil {
				return err
			}

			resumeText, err := services.NewResumeParserService().ExtractText(resume)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), services.NewPromptBuilder().BuildATSPrompt(jd, resumeText))
			return nil
		},
	}

	input.register(cmd)
	return cmd
}
