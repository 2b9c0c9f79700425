package repository

import (
	"context"

	"gearshare/internal/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	// UpdateStatusFromWaiting flips the status only if the row is still
	// WAITING, so two concurrent approvals cannot both win. Returns the
	// number of rows changed.
	UpdateStatusFromWaiting(ctx context.Context, id uint, status models.BookingStatus) (int64, error)
	FindByBookerID(ctx context.Context, bookerID uint, filter models.BookingFilter, from, size int) ([]models.Booking, int64, error)
	FindByItemIDs(ctx context.Context, itemIDs []uint, filter models.BookingFilter, from, size int) ([]models.Booking, int64, error)
	FindByItemIDAndStatus(ctx context.Context, itemID uint, status models.BookingStatus) ([]models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Item").Preload("Booker").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatusFromWaiting(ctx context.Context, id uint, status models.BookingStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.StatusWaiting).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) FindByBookerID(ctx context.Context, bookerID uint, filter models.BookingFilter, from, size int) ([]models.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Booking{}).Where("booker_id = ?", bookerID)
	return r.page(applyFilter(q, filter), from, size)
}

func (r *bookingRepository) FindByItemIDs(ctx context.Context, itemIDs []uint, filter models.BookingFilter, from, size int) ([]models.Booking, int64, error) {
	if len(itemIDs) == 0 {
		return []models.Booking{}, 0, nil
	}
	q := r.db.WithContext(ctx).Model(&models.Booking{}).Where("item_id IN ?", itemIDs)
	return r.page(applyFilter(q, filter), from, size)
}

func (r *bookingRepository) FindByItemIDAndStatus(ctx context.Context, itemID uint, status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, status).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// applyFilter translates a BookingFilter into SQL conditions. This is the
// only place the temporal classification touches query construction.
func applyFilter(q *gorm.DB, f models.BookingFilter) *gorm.DB {
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.StartsBy != nil {
		q = q.Where("start_date <= ?", *f.StartsBy)
	}
	if f.StartsAfter != nil {
		q = q.Where("start_date > ?", *f.StartsAfter)
	}
	if f.EndsBefore != nil {
		q = q.Where("end_date < ?", *f.EndsBefore)
	}
	if f.EndsFrom != nil {
		q = q.Where("end_date >= ?", *f.EndsFrom)
	}
	return q
}

func (r *bookingRepository) page(q *gorm.DB, from, size int) ([]models.Booking, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := q.Preload("Item").Preload("Booker").
		Order("start_date DESC").
		Offset(pageOffset(from, size)).
		Limit(size).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// pageOffset keeps the page-index pagination of the historical API: "from"
// is truncated to a whole number of pages, so from=5,size=10 reads page 0.
// Callers relying on raw row offsets must pass multiples of size.
func pageOffset(from, size int) int {
	if size <= 0 {
		return 0
	}
	return (from / size) * size
}
