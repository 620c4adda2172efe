package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"alfredoptarigan/ats-checker/internal/models"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	keywordColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	faintColor   = color.New(color.Faint)
)

func renderAnalysis(w io.Writer, analysis *models.Analysis, showRaw bool) {
	switch outcome := analysis.Outcome.(type) {
	case models.AnalysisResult:
		renderResult(w, outcome)
		if showRaw {
			renderRaw(w, analysis.RawResponse)
		}
	case models.ExtractionFailure:
		errorColor.Fprintln(w, "⚠️  AI response was not in valid JSON format.")
		renderRaw(w, outcome.RawResponse)
	}
}

func renderResult(w io.Writer, result models.AnalysisResult) {
	headingColor.Fprintln(w, "📌 Resume Analysis Results")
	fmt.Fprintf(w, "✅ JD Match: %s\n\n", result.JDMatch)

	headingColor.Fprintln(w, "🚀 Missing Keywords")
	if len(result.MissingKeywords) == 0 {
		fmt.Fprintln(w, "No missing keywords found! 🎯")
	} else {
		keywords := make([]string, len(result.MissingKeywords))
		for i, kw := range result.MissingKeywords {
			keywords[i] = keywordColor.Sprint(kw)
		}
		fmt.Fprintln(w, strings.Join(keywords, ", "))
	}
	fmt.Fprintln(w)

	headingColor.Fprintln(w, "📄 Profile Summary")
	fmt.Fprintln(w, result.ProfileSummary)
}

func renderRaw(w io.Writer, raw string) {
	fmt.Fprintln(w)
	headingColor.Fprintln(w, "🔍 Raw AI Response")
	faintColor.Fprintln(w, raw)
}
