package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careerpilot/career-assistant/internal/models"
	"careerpilot/career-assistant/internal/services"
)

type AssistantHandler struct {
	assistant services.AssistantService
	pdfParser services.PDFParserService
}

func NewAssistantHandler(assistant services.AssistantService, pdfParser services.PDFParserService) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		pdfParser: pdfParser,
	}
}

// HandleGenerateResume handles POST /assistant/resume
func (h *AssistantHandler) HandleGenerateResume(c *fiber.Ctx) error {
	var req models.GenerateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Profile == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "profile is required",
		})
	}

	text, err := h.assistant.GenerateResume(c.Context(), *req.Profile, req.Language)
	if err != nil {
		return assistantError(c, err)
	}

	return c.JSON(models.GenerateResumeResponse{Text: text})
}

// HandleParseResume handles POST /assistant/resume/parse
func (h *AssistantHandler) HandleParseResume(c *fiber.Ctx) error {
	var req models.ParseResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	input, err := resumeInputFromRequest(req.Text, req.File)
	if err != nil {
		return assistantError(c, err)
	}

	profile, err := h.assistant.ParseResume(c.Context(), input)
	if err != nil {
		return assistantError(c, err)
	}

	return c.JSON(profile)
}

// HandleAnalyzeATS handles POST /assistant/ats
func (h *AssistantHandler) HandleAnalyzeATS(c *fiber.Ctx) error {
	var req models.ATSRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobDescription is required",
		})
	}

	input, err := resumeInputFromRequest(req.Text, req.File)
	if err != nil {
		return assistantError(c, err)
	}

	analysis, err := h.assistant.AnalyzeATS(c.Context(), input, req.JobDescription)
	if err != nil {
		return assistantError(c, err)
	}

	return c.JSON(analysis)
}

// HandleSkillGap handles POST /assistant/skill-gap
func (h *AssistantHandler) HandleSkillGap(c *fiber.Ctx) error {
	var req models.SkillGapRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	analysis, err := h.assistant.AnalyzeSkillGap(c.Context(), req.CurrentSkills, req.TargetRole)
	if err != nil {
		return assistantError(c, err)
	}

	return c.JSON(analysis)
}

// HandleExtractText handles POST /assistant/resume/extract. Takes a
// multipart PDF upload and returns its plain text without a model call.
func (h *AssistantHandler) HandleExtractText(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer file.Close()

	text, pages, err := h.pdfParser.ExtractText(file, fileHeader.Size)
	if err != nil {
		return assistantError(c, err)
	}

	return c.JSON(models.ExtractTextResponse{
		Text:      text,
		PageCount: pages,
	})
}

// resumeInputFromRequest normalizes the text-or-file union from the
// wire. Exactly one variant must be present.
func resumeInputFromRequest(text string, file *models.ResumeFilePayload) (services.ResumeInput, error) {
	if file != nil {
		return services.NormalizeResumeFile("", file.MimeType, file.Data)
	}
	return services.NormalizeResumeText(text)
}

// assistantError maps the service error taxonomy onto HTTP statuses.
// Input-side failures are the caller's fault; generation failures are
// reported as a generic upstream error.
func assistantError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingInput),
		errors.Is(err, services.ErrUnsupportedFormat),
		errors.Is(err, services.ErrFileRead):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var genErr *services.GenerationError
	if errors.As(err, &genErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "The AI service could not process this request. Please try again.",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal error",
	})
}
