package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careerpilot/career-assistant/internal/models"
	"careerpilot/career-assistant/internal/services"
)

type InterviewHandler struct {
	interviews services.InterviewService
}

func NewInterviewHandler(interviews services.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// HandleStart handles POST /interview/start
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	var req models.InterviewStartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	sessionID, opening := h.interviews.Start(req.Name, req.TargetRole)

	return c.Status(fiber.StatusCreated).JSON(models.InterviewStartResponse{
		SessionID: sessionID,
		Opening:   opening,
	})
}

// HandleMessage handles POST /interview/message
func (h *InterviewHandler) HandleMessage(c *fiber.Ctx) error {
	var req models.InterviewMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	reply, err := h.interviews.Submit(c.Context(), req.SessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoSession):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Interview session not found",
			})
		case errors.Is(err, services.ErrSessionBusy):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A reply is still being generated. Please wait.",
			})
		}
		return assistantError(c, err)
	}

	return c.JSON(models.InterviewMessageResponse{Reply: reply})
}

// HandleHistory handles GET /interview/:id
func (h *InterviewHandler) HandleHistory(c *fiber.Ctx) error {
	turns, err := h.interviews.History(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Interview session not found",
		})
	}

	return c.JSON(fiber.Map{"turns": turns})
}

// HandleEnd handles DELETE /interview/:id
func (h *InterviewHandler) HandleEnd(c *fiber.Ctx) error {
	h.interviews.End(c.Params("id"))
	return c.JSON(fiber.Map{"message": "Session ended"})
}
