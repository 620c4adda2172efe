package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
	uploads  services.UploadService
	validate *validator.Validate
	showRaw  bool
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	uploads services.UploadService,
	showRaw bool,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		uploads:  uploads,
		validate: validator.New(),
		showRaw:  showRaw,
	}
}

// HandleAnalyze handles POST /api/v1/analyze (multipart: job_description, resume)
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resume, err := readResume(c, h.uploads)
	if err != nil {
		return respondError(c, err)
	}

	analysis, err := h.analyzer.AnalyzeResume(c.UserContext(), c.FormValue("job_description"), resume)
	if err != nil {
		return respondError(c, err)
	}

	return h.respond(c, analysis)
}

// HandleAnalyzeText handles POST /api/v1/analyze/text for callers that already
// have the resume as plain text.
func (h *AnalyzeHandler) HandleAnalyzeText(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	analysis, err := h.analyzer.AnalyzeText(c.UserContext(), models.AnalysisRequest{
		JobDescription: req.JobDescription,
		ResumeText:     services.SanitizeText(req.ResumeText),
	})
	if err != nil {
		return respondError(c, err)
	}

	return h.respond(c, analysis)
}

func (h *AnalyzeHandler) respond(c *fiber.Ctx, analysis *models.Analysis) error {
	resp := models.NewAnalyzeResponse(analysis, h.showRaw)

	status := fiber.StatusOK
	if _, failed := analysis.Failure(); failed {
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(resp)
}

// readResume pulls the "resume" form file. An absent file is ErrMissingResume.
func readResume(c *fiber.Ctx, uploads services.UploadService) (*models.ResumeFile, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return nil, services.ErrMissingResume
	}

	return uploads.ReadResume(file)
}
