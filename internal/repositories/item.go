package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpilot/career-assistant/internal/models"
)

// ItemRepository scopes every lookup by owner: an item belonging to
// another user is indistinguishable from a missing one.
type ItemRepository interface {
	Create(item *models.Item) error
	FindByOwner(ownerID uuid.UUID) ([]models.Item, error)
	FindByID(ownerID, id uuid.UUID) (*models.Item, error)
	Update(ownerID uuid.UUID, item *models.Item) error
	Delete(ownerID, id uuid.UUID) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create implements ItemRepository.
func (r *itemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// FindByOwner implements ItemRepository.
func (r *itemRepository) FindByOwner(ownerID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// FindByID implements ItemRepository.
func (r *itemRepository) FindByID(ownerID, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return &item, nil
}

// Update implements ItemRepository.
func (r *itemRepository) Update(ownerID uuid.UUID, item *models.Item) error {
	result := r.db.Model(&models.Item{}).
		Where("id = ? AND owner_id = ?", item.ID, ownerID).
		Updates(map[string]interface{}{
			"title":       item.Title,
			"description": item.Description,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete implements ItemRepository.
func (r *itemRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Item{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
