package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gearshare/internal/models"
	"gearshare/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ItemUpdate struct {
	Name        *string
	Description *string
	Available   *bool
}

// ItemDetails is an item enriched for display: comments always, last/next
// approved booking only when the viewer owns the item.
type ItemDetails struct {
	Item        models.Item
	LastBooking *models.Booking
	NextBooking *models.Booking
	Comments    []CommentWithAuthor
}

type CommentWithAuthor struct {
	Comment    models.Comment
	AuthorName string
}

type ItemService interface {
	GetByID(ctx context.Context, id, userID uint) (*ItemDetails, error)
	ListByOwner(ctx context.Context, ownerID uint, from, size int) ([]ItemDetails, error)
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	Update(ctx context.Context, id, userID uint, upd ItemUpdate) (*models.Item, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, text string, from, size int) ([]models.Item, error)
	AddComment(ctx context.Context, itemID, authorID uint, text string) (*CommentWithAuthor, error)
}

type itemService struct {
	items    repository.ItemRepository
	users    repository.UserRepository
	bookings repository.BookingRepository
	comments repository.CommentRepository
	log      zerolog.Logger
}

func NewItemService(
	items repository.ItemRepository,
	users repository.UserRepository,
	bookings repository.BookingRepository,
	comments repository.CommentRepository,
	log zerolog.Logger,
) ItemService {
	return &itemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		log:      log,
	}
}

func (s *itemService) GetByID(ctx context.Context, id, userID uint) (*ItemDetails, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, item, userID == item.OwnerID)
}

func (s *itemService) ListByOwner(ctx context.Context, ownerID uint, from, size int) ([]ItemDetails, error) {
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.FindByOwnerID(ctx, ownerID, from, size)
	if err != nil {
		return nil, err
	}

	result := make([]ItemDetails, 0, len(items))
	for i := range items {
		details, err := s.details(ctx, &items[i], true)
		if err != nil {
			return nil, err
		}
		result = append(result, *details)
	}
	return result, nil
}

func (s *itemService) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := s.checkUserExists(ctx, item.OwnerID); err != nil {
		return nil, err
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	s.log.Info().Uint("item_id", item.ID).Uint("owner_id", item.OwnerID).Msg("item created")
	return item, nil
}

func (s *itemService) Update(ctx context.Context, id, userID uint, upd ItemUpdate) (*models.Item, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, Forbiddenf("only the owner may update item %d", id)
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Available != nil {
		item.Available = upd.Available
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, id uint) error {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, item); err != nil {
		return err
	}
	s.log.Info().Uint("item_id", id).Msg("item deleted")
	return nil
}

func (s *itemService) Search(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	return s.items.Search(ctx, text, from, size)
}

// AddComment requires the author to have an approved booking of the item
// that already ended.
func (s *itemService) AddComment(ctx context.Context, itemID, authorID uint, text string) (*CommentWithAuthor, error) {
	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("user %d does not exist", authorID)
		}
		return nil, err
	}

	bookings, err := s.bookings.FindByItemIDAndStatus(ctx, itemID, models.StatusApproved)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	eligible := false
	for _, b := range bookings {
		if b.BookerID == authorID && b.EndDate.Before(now) {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, Validationf("user %d has no finished booking of item %d", authorID, itemID)
	}

	comment := &models.Comment{
		ItemID:   itemID,
		AuthorID: authorID,
		Text:     text,
		Created:  now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return &CommentWithAuthor{Comment: *comment, AuthorName: author.Name}, nil
}

func (s *itemService) details(ctx context.Context, item *models.Item, forOwner bool) (*ItemDetails, error) {
	details := &ItemDetails{Item: *item}

	comments, err := s.comments.FindByItemID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	details.Comments = make([]CommentWithAuthor, 0, len(comments))
	for _, c := range comments {
		name := ""
		if author, err := s.users.FindByID(ctx, c.AuthorID); err == nil {
			name = author.Name
		}
		details.Comments = append(details.Comments, CommentWithAuthor{Comment: c, AuthorName: name})
	}

	if forOwner {
		approved, err := s.bookings.FindByItemIDAndStatus(ctx, item.ID, models.StatusApproved)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		details.LastBooking = lastBookingOf(approved, now)
		details.NextBooking = nextBookingOf(approved, now)
	}
	return details, nil
}

func (s *itemService) findItem(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("item %d does not exist", id)
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) checkUserExists(ctx context.Context, userID uint) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundf("user %d does not exist", userID)
		}
		return err
	}
	return nil
}
