package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerpilot/career-assistant/internal/middleware"
	"careerpilot/career-assistant/internal/models"
	"careerpilot/career-assistant/internal/repositories"
)

type ItemHandler struct {
	itemRepo repositories.ItemRepository
}

func NewItemHandler(itemRepo repositories.ItemRepository) *ItemHandler {
	return &ItemHandler{itemRepo: itemRepo}
}

// HandleCreate handles POST /items
func (h *ItemHandler) HandleCreate(c *fiber.Ctx) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid user identity",
		})
	}

	var req models.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	item := &models.Item{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.itemRepo.Create(item); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleList handles GET /items
func (h *ItemHandler) HandleList(c *fiber.Ctx) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid user identity",
		})
	}

	items, err := h.itemRepo.FindByOwner(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list items",
		})
	}

	return c.JSON(items)
}

// HandleGet handles GET /items/:id
func (h *ItemHandler) HandleGet(c *fiber.Ctx) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid user identity",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID format",
		})
	}

	item, err := h.itemRepo.FindByID(ownerID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find item",
		})
	}

	return c.JSON(item)
}

// HandleUpdate handles PUT /items/:id
func (h *ItemHandler) HandleUpdate(c *fiber.Ctx) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid user identity",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID format",
		})
	}

	var req models.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	item := &models.Item{
		ID:          itemID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.itemRepo.Update(ownerID, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update item",
		})
	}

	updated, err := h.itemRepo.FindByID(ownerID, itemID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load updated item",
		})
	}

	return c.JSON(updated)
}

// HandleDelete handles DELETE /items/:id
func (h *ItemHandler) HandleDelete(c *fiber.Ctx) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid user identity",
		})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID format",
		})
	}

	if err := h.itemRepo.Delete(ownerID, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete item",
		})
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}

func ownerFromContext(c *fiber.Ctx) (uuid.UUID, bool) {
	ownerID, err := uuid.Parse(middleware.UserID(c))
	if err != nil {
		return uuid.Nil, false
	}
	return ownerID, true
}
