package repository

import (
	"context"

	"gearshare/internal/models"

	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.ItemRequest) error
	FindByID(ctx context.Context, id uint) (*models.ItemRequest, error)
	FindByRequesterID(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
	FindByOtherRequesters(ctx context.Context, requesterID uint, from, size int) ([]models.ItemRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindByRequesterID(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	if err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) FindByOtherRequesters(ctx context.Context, requesterID uint, from, size int) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created ASC").
		Offset(pageOffset(from, size)).
		Limit(size).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
