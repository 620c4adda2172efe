package models

import (
	"time"

	"github.com/google/uuid"
)

type FailureKind string

const (
	FailureInvalidJSON FailureKind = "invalid_json"
)

// Defaults used when the model's JSON object omits a field.
const (
	DefaultJDMatch        = "N/A"
	DefaultProfileSummary = "No summary available."
)

// AnalysisRequest is built once per submission and discarded afterwards.
type AnalysisRequest struct {
	JobDescription string
	ResumeText     string
}

// Outcome is either an AnalysisResult or an ExtractionFailure.
type Outcome interface {
	isOutcome()
}

type AnalysisResult struct {
	JDMatch         string   `json:"jd_match"`
	MissingKeywords []string `json:"missing_keywords"`
	ProfileSummary  string   `json:"profile_summary"`
}

func (AnalysisResult) isOutcome() {}

// ExtractionFailure keeps the untouched model reply so an operator can see
// what came back.
type ExtractionFailure struct {
	Kind        FailureKind `json:"kind"`
	RawResponse string      `json:"raw_response"`
	Reason      string      `json:"reason,omitempty"`
}

func (ExtractionFailure) isOutcome() {}

// Analysis is the product of one submission.
type Analysis struct {
	ID          uuid.UUID
	Outcome     Outcome
	RawResponse string
	ResumeChars int
	Duration    time.Duration
}

// Result returns the parsed result, if the analysis produced one.
func (a *Analysis) Result() (AnalysisResult, bool) {
	r, ok := a.Outcome.(AnalysisResult)
	return r, ok
}

// Failure returns the extraction failure, if the analysis produced one.
func (a *Analysis) Failure() (ExtractionFailure, bool) {
	f, ok := a.Outcome.(ExtractionFailure)
	return f, ok
}
