package service

import (
	"context"
	"errors"
	"time"

	"gearshare/internal/metrics"
	"gearshare/internal/models"
	"gearshare/internal/repository"
	"gearshare/pkg/rabbitmq"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type BookingService interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, id, userID uint) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, userID uint, approved bool) (*models.Booking, error)
	ListByBooker(ctx context.Context, bookerID uint, state models.State, from, size int) ([]models.Booking, int64, error)
	ListByOwner(ctx context.Context, ownerID uint, state models.State, from, size int) ([]models.Booking, int64, error)
	GetByItemID(ctx context.Context, itemID uint, status models.BookingStatus) ([]models.Booking, error)
	LastBooking(ctx context.Context, itemID uint) (*models.Booking, error)
	NextBooking(ctx context.Context, itemID uint) (*models.Booking, error)
}

type bookingService struct {
	bookings  repository.BookingRepository
	users     repository.UserRepository
	items     repository.ItemRepository
	publisher *rabbitmq.Publisher
	log       zerolog.Logger
}

func NewBookingService(
	bookings repository.BookingRepository,
	users repository.UserRepository,
	items repository.ItemRepository,
	publisher *rabbitmq.Publisher,
	log zerolog.Logger,
) BookingService {
	return &bookingService{
		bookings:  bookings,
		users:     users,
		items:     items,
		publisher: publisher,
		log:       log,
	}
}

// Create persists a new booking with status forced to WAITING. Any status
// supplied by the caller is discarded. An owner trying to book their own
// item gets NotFound rather than Forbidden so the check leaks nothing.
func (s *bookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	item, err := s.getItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable() {
		return nil, Validationf("item %d is not available for booking", item.ID)
	}
	if booking.BookerID == item.OwnerID {
		return nil, NotFoundf("owners cannot book their own items")
	}
	if err := s.checkUserExists(ctx, booking.BookerID); err != nil {
		return nil, err
	}

	now := time.Now()
	if booking.StartDate.Before(now) || booking.EndDate.Before(now) || !booking.EndDate.After(booking.StartDate) {
		return nil, Validationf("invalid booking period")
	}

	booking.Status = models.StatusWaiting
	booking.Item = nil
	booking.Booker = nil
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.publish("booking.created", booking)
	s.log.Info().Uint("booking_id", booking.ID).Uint("item_id", booking.ItemID).
		Uint("booker_id", booking.BookerID).Msg("booking created")

	return s.bookings.FindByID(ctx, booking.ID)
}

// GetByID returns the booking only to its booker or the item's owner.
// Anyone else gets NotFound, masking the booking's existence.
func (s *bookingService) GetByID(ctx context.Context, id, userID uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("booking %d does not exist", id)
		}
		return nil, err
	}

	item, err := s.getItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}

	if userID != booking.BookerID && userID != item.OwnerID {
		return nil, NotFoundf("booking %d does not exist", id)
	}
	return booking, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id, userID uint, approved bool) (*models.Booking, error) {
	booking, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.getItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if userID != item.OwnerID {
		return nil, NotFoundf("booking %d does not exist", id)
	}

	if booking.Status != models.StatusWaiting {
		return nil, Validationf("booking %d status already set: %s", id, booking.Status)
	}

	status := models.StatusRejected
	routingKey := "booking.rejected"
	if approved {
		status = models.StatusApproved
		routingKey = "booking.approved"
	}

	// Guarded update: if a concurrent call won the race the row is no
	// longer WAITING and zero rows change.
	rows, err := s.bookings.UpdateStatusFromWaiting(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, Validationf("booking %d status already set", id)
	}

	booking.Status = status
	metrics.IncBookingStatusUpdate(string(status))
	s.publish(routingKey, booking)
	s.log.Info().Uint("booking_id", id).Str("status", string(status)).Msg("booking status updated")

	return booking, nil
}

func (s *bookingService) ListByBooker(ctx context.Context, bookerID uint, state models.State, from, size int) ([]models.Booking, int64, error) {
	filter, err := filterForState(state)
	if err != nil {
		return nil, 0, err
	}
	if err := s.checkUserExists(ctx, bookerID); err != nil {
		return nil, 0, err
	}
	return s.bookings.FindByBookerID(ctx, bookerID, filter, from, size)
}

func (s *bookingService) ListByOwner(ctx context.Context, ownerID uint, state models.State, from, size int) ([]models.Booking, int64, error) {
	filter, err := filterForState(state)
	if err != nil {
		return nil, 0, err
	}
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, 0, err
	}

	itemIDs, err := s.items.IDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	return s.bookings.FindByItemIDs(ctx, itemIDs, filter, from, size)
}

func (s *bookingService) GetByItemID(ctx context.Context, itemID uint, status models.BookingStatus) ([]models.Booking, error) {
	return s.bookings.FindByItemIDAndStatus(ctx, itemID, status)
}

// LastBooking returns the approved booking that finished most recently, nil
// when the item has never had one.
func (s *bookingService) LastBooking(ctx context.Context, itemID uint) (*models.Booking, error) {
	bookings, err := s.bookings.FindByItemIDAndStatus(ctx, itemID, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	return lastBookingOf(bookings, time.Now()), nil
}

// NextBooking returns the approved booking starting soonest after now, nil
// when there is none.
func (s *bookingService) NextBooking(ctx context.Context, itemID uint) (*models.Booking, error) {
	bookings, err := s.bookings.FindByItemIDAndStatus(ctx, itemID, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	return nextBookingOf(bookings, time.Now()), nil
}

// filterForState snapshots "now" once and resolves the state against it,
// before anything touches storage.
func filterForState(state models.State) (models.BookingFilter, error) {
	filter, err := state.Filter(time.Now())
	if err != nil {
		return models.BookingFilter{}, Validationf("%v", err)
	}
	return filter, nil
}

func (s *bookingService) publish(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, booking); err != nil {
		s.log.Warn().Err(err).Str("key", routingKey).Msg("failed to publish booking event")
	}
}

func (s *bookingService) checkUserExists(ctx context.Context, userID uint) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundf("user %d does not exist", userID)
		}
		return err
	}
	return nil
}

func (s *bookingService) getItem(ctx context.Context, itemID uint) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("item %d does not exist", itemID)
		}
		return nil, err
	}
	return item, nil
}
