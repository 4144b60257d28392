package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careerpilot/career-assistant/internal/models"
	"careerpilot/career-assistant/internal/repositories"
	"careerpilot/career-assistant/internal/services"
)

type JobHandler struct {
	jobRepo  repositories.JobRepository
	jobMatch services.JobMatchService
}

func NewJobHandler(jobRepo repositories.JobRepository, jobMatch services.JobMatchService) *JobHandler {
	return &JobHandler{
		jobRepo:  jobRepo,
		jobMatch: jobMatch,
	}
}

// HandleList handles GET /jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	jobs, err := h.jobRepo.FindAll(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list jobs",
		})
	}

	return c.JSON(jobs)
}

// HandleMatch handles POST /jobs/match
func (h *JobHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.JobMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	matches, err := h.jobMatch.Recommend(c.Context(), req.Skills, req.TargetRole, req.Limit)
	if err != nil {
		return assistantError(c, err)
	}

	return c.JSON(fiber.Map{"matches": matches})
}
