package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"alfredoptarigan/ats-checker/internal/models"
)

// Field names the prompt asks the model to use.
const (
	fieldJDMatch         = "JD Match"
	fieldMissingKeywords = "MissingKeywords"
	fieldProfileSummary  = "Profile Summary"
)

// ExtractAnalysis turns a free-form model reply into an Outcome.
//
// The JSON object is taken to span from the first '{' to the last '}' of the
// trimmed reply. Prose or code fences around the object are ignored, while a
// stray brace in the surrounding prose makes the slice unparseable and yields
// an ExtractionFailure. Fields missing from a parseable object fall back to
// their defaults; the object is still a success.
//
// ExtractAnalysis has no state and never panics.
func ExtractAnalysis(raw string) models.Outcome {
	trimmed := strings.TrimSpace(raw)

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return invalidJSON(raw, "no JSON object found")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &fields); err != nil {
		return invalidJSON(raw, err.Error())
	}

	return models.AnalysisResult{
		JDMatch:         textField(fields, fieldJDMatch, models.DefaultJDMatch),
		MissingKeywords: keywordsField(fields),
		ProfileSummary:  textField(fields, fieldProfileSummary, models.DefaultProfileSummary),
	}
}

func invalidJSON(raw, reason string) models.ExtractionFailure {
	return models.ExtractionFailure{
		Kind:        models.FailureInvalidJSON,
		RawResponse: raw,
		Reason:      reason,
	}
}

// textField reads a string field. Non-string values keep their JSON text so
// that e.g. "JD Match": 80 is shown as 80 rather than dropped.
func textField(fields map[string]json.RawMessage, key, fallback string) string {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return fallback
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return compactJSON(raw)
}

// keywordsField accepts an array (of strings or anything else) or a single
// comma separated string. The result is never nil.
func keywordsField(fields map[string]json.RawMessage) []string {
	raw, ok := fields[fieldMissingKeywords]
	if !ok || isNull(raw) {
		return []string{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		keywords := make([]string, 0, len(items))
		for _, item := range items {
			if isNull(item) {
				continue
			}
			var s string
			if err := json.Unmarshal(item, &s); err == nil {
				keywords = append(keywords, s)
				continue
			}
			keywords = append(keywords, compactJSON(item))
		}
		return keywords
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return splitKeywords(s)
	}

	return []string{compactJSON(raw)}
}

func splitKeywords(s string) []string {
	keywords := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
