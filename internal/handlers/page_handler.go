package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

//go:embed templates
var templatesFS embed.FS

type PageHandler struct {
	analyzer services.AnalyzerService
	uploads  services.UploadService
	tmpl     *template.Template
	showRaw  bool
}

type pageData struct {
	Title          string
	JobDescription string
	Warning        string
	Error          string
	Result         *models.AnalysisResult
	Failure        bool
	ShowRaw        bool
	RawResponse    string
}

func NewPageHandler(
	analyzer services.AnalyzerService,
	uploads services.UploadService,
	showRaw bool,
) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &PageHandler{
		analyzer: analyzer,
		uploads:  uploads,
		tmpl:     tmpl,
		showRaw:  showRaw,
	}, nil
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, pageData{})
}

// HandleAnalyze handles POST /analyze from the HTML form.
func (h *PageHandler) HandleAnalyze(c *fiber.Ctx) error {
	data := pageData{
		JobDescription: c.FormValue("job_description"),
	}

	resume, err := readResume(c, h.uploads)
	if errors.Is(err, services.ErrMissingResume) {
		data.Warning = "Please upload a resume before submitting."
		return h.render(c, fiber.StatusBadRequest, data)
	}

	var analysis *models.Analysis
	if err == nil {
		analysis, err = h.analyzer.AnalyzeResume(c.UserContext(), data.JobDescription, resume)
	}
	if err != nil {
		data.Error = err.Error()
		return h.render(c, statusFor(err), data)
	}

	status := fiber.StatusOK
	switch outcome := analysis.Outcome.(type) {
	case models.AnalysisResult:
		data.Result = &outcome
		if h.showRaw {
			data.ShowRaw = true
			data.RawResponse = analysis.RawResponse
		}
	case models.ExtractionFailure:
		status = fiber.StatusUnprocessableEntity
		data.Failure = true
		data.ShowRaw = true
		data.RawResponse = outcome.RawResponse
	}

	return h.render(c, status, data)
}

func (h *PageHandler) render(c *fiber.Ctx, status int, data pageData) error {
	if data.Title == "" {
		data.Title = "ATS Resume Checker"
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
