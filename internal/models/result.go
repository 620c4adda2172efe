package models

type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"max=50000"`
	ResumeText     string `json:"resume_text" validate:"max=200000"`
}

const (
	StatusSuccess = "success"
)

type AnalyzeResponse struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Result      *AnalysisResult `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
	RawResponse *string         `json:"raw_response,omitempty"`
}

const errInvalidJSON = "AI response was not in valid JSON format"

// NewAnalyzeResponse maps an analysis onto the API response. The raw model
// reply is always included for failures and only on request for successes.
func NewAnalyzeResponse(a *Analysis, includeRaw bool) AnalyzeResponse {
	resp := AnalyzeResponse{
		ID: a.ID.String(),
	}

	switch outcome := a.Outcome.(type) {
	case AnalysisResult:
		resp.Status = StatusSuccess
		resp.Result = &outcome
		if includeRaw {
			raw := a.RawResponse
			resp.RawResponse = &raw
		}
	case ExtractionFailure:
		resp.Status = string(outcome.Kind)
		resp.Error = errInvalidJSON
		raw := outcome.RawResponse
		resp.RawResponse = &raw
	}

	return resp
}
