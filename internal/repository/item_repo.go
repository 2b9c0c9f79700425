package repository

import (
	"context"

	"gearshare/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uint) (*models.Item, error)
	Save(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, item *models.Item) error
	FindByOwnerID(ctx context.Context, ownerID uint, from, size int) ([]models.Item, error)
	// IDsByOwner fetches every item id the owner has, unpaginated. Owner
	// catalogs are expected to stay small; bound or stream here if that
	// stops holding.
	IDsByOwner(ctx context.Context, ownerID uint) ([]uint, error)
	Search(ctx context.Context, text string, from, size int) ([]models.Item, error)
	FindByRequestID(ctx context.Context, requestID uint) ([]models.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *itemRepository) FindByOwnerID(ctx context.Context, ownerID uint, from, size int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(pageOffset(from, size)).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) IDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *itemRepository) Search(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + text + "%"
	err := r.db.WithContext(ctx).
		Where("available = true AND (name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("id ASC").
		Offset(pageOffset(from, size)).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByRequestID(ctx context.Context, requestID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
