package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"alfredoptarigan/ats-checker/internal/models"
)

func TestRenderAnalysis(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	const raw = "```json\n{\"JD Match\": \"85%\"}\n```"

	tests := []struct {
		name        string
		analysis    *models.Analysis
		showRaw     bool
		contains    []string
		notContains []string
	}{
		{
			name: "result with keywords",
			analysis: &models.Analysis{
				Outcome: models.AnalysisResult{
					JDMatch:         "85%",
					MissingKeywords: []string{"Go", "Kubernetes"},
					ProfileSummary:  "Strong backend profile.",
				},
				RawResponse: raw,
			},
			contains:    []string{"✅ JD Match: 85%", "Go, Kubernetes\n", "Strong backend profile.\n"},
			notContains: []string{"No missing keywords found!", "Raw AI Response"},
		},
		{
			name: "result without keywords",
			analysis: &models.Analysis{
				Outcome: models.AnalysisResult{
					JDMatch:         "N/A",
					MissingKeywords: []string{},
					ProfileSummary:  models.DefaultProfileSummary,
				},
			},
			contains: []string{"✅ JD Match: N/A", "No missing keywords found! 🎯", models.DefaultProfileSummary},
		},
		{
			name: "raw output on request",
			analysis: &models.Analysis{
				Outcome:     models.AnalysisResult{JDMatch: "85%", MissingKeywords: []string{}},
				RawResponse: raw,
			},
			showRaw:  true,
			contains: []string{"🔍 Raw AI Response", raw},
		},
		{
			name: "failure always shows raw text",
			analysis: &models.Analysis{
				Outcome: models.ExtractionFailure{
					Kind:        models.FailureInvalidJSON,
					RawResponse: "Sorry, I cannot help with that.",
				},
				RawResponse: "Sorry, I cannot help with that.",
			},
			contains:    []string{"AI response was not in valid JSON format.", "🔍 Raw AI Response", "Sorry, I cannot help with that."},
			notContains: []string{"JD Match", "Missing Keywords"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderAnalysis(&buf, tt.analysis, tt.showRaw)

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}
