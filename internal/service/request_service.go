package service

import (
	"context"
	"errors"
	"time"

	"gearshare/internal/models"
	"gearshare/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RequestDetails is an item request together with the items offered in
// response to it.
type RequestDetails struct {
	Request models.ItemRequest
	Items   []models.Item
}

type RequestService interface {
	Create(ctx context.Context, request *models.ItemRequest) (*models.ItemRequest, error)
	ListOwn(ctx context.Context, requesterID uint) ([]RequestDetails, error)
	ListOthers(ctx context.Context, userID uint, from, size int) ([]RequestDetails, error)
	GetByID(ctx context.Context, userID, id uint) (*RequestDetails, error)
}

type requestService struct {
	requests repository.RequestRepository
	users    repository.UserRepository
	items    repository.ItemRepository
	log      zerolog.Logger
}

func NewRequestService(
	requests repository.RequestRepository,
	users repository.UserRepository,
	items repository.ItemRepository,
	log zerolog.Logger,
) RequestService {
	return &requestService{requests: requests, users: users, items: items, log: log}
}

func (s *requestService) Create(ctx context.Context, request *models.ItemRequest) (*models.ItemRequest, error) {
	if err := s.checkUserExists(ctx, request.RequesterID); err != nil {
		return nil, err
	}
	request.Created = time.Now()
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	s.log.Info().Uint("request_id", request.ID).Uint("requester_id", request.RequesterID).Msg("item request created")
	return request, nil
}

func (s *requestService) ListOwn(ctx context.Context, requesterID uint) ([]RequestDetails, error) {
	if err := s.checkUserExists(ctx, requesterID); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindByRequesterID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, requests)
}

func (s *requestService) ListOthers(ctx context.Context, userID uint, from, size int) ([]RequestDetails, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindByOtherRequesters(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, requests)
}

func (s *requestService) GetByID(ctx context.Context, userID, id uint) (*RequestDetails, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("request %d does not exist", id)
		}
		return nil, err
	}

	items, err := s.items.FindByRequestID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	return &RequestDetails{Request: *request, Items: items}, nil
}

func (s *requestService) annotate(ctx context.Context, requests []models.ItemRequest) ([]RequestDetails, error) {
	result := make([]RequestDetails, 0, len(requests))
	for _, request := range requests {
		items, err := s.items.FindByRequestID(ctx, request.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, RequestDetails{Request: request, Items: items})
	}
	return result, nil
}

func (s *requestService) checkUserExists(ctx context.Context, userID uint) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundf("user %d does not exist", userID)
		}
		return err
	}
	return nil
}
