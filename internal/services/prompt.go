package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildATSPrompt creates the resume screening prompt. Both inputs are embedded
// verbatim and the expected JSON shape is spelled out for the model.
func (pb *PromptBuilder) BuildATSPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`Act as a skilled, very experienced ATS (Applicant Tracking System) with a deep
understanding of the tech field: software engineering, data science, data analysis
and big data engineering. Your task is to evaluate the resume against the given
job description.

The job market is very competitive, so give the best possible assistance for
improving the resume. Assign a percentage match based on the job description and
list the missing keywords with high accuracy.

JOB DESCRIPTION:
%s

RESUME EXTRACTED TEXT:
%s

Return your response as JSON in exactly this format:
`+"```json"+`
{
  "JD Match": "XX%%",
  "MissingKeywords": [],
  "Profile Summary": "Brief feedback on strengths and improvement areas."
}
`+"```", jobDescription, resumeText)
}
