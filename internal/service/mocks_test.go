package service

import (
	"context"

	"gearshare/internal/models"

	"gorm.io/gorm"
)

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn           func(ctx context.Context, booking *models.Booking) error
	findByIDFn         func(ctx context.Context, id uint) (*models.Booking, error)
	updateStatusFn     func(ctx context.Context, id uint, status models.BookingStatus) (int64, error)
	findByBookerFn     func(ctx context.Context, bookerID uint, filter models.BookingFilter, from, size int) ([]models.Booking, int64, error)
	findByItemIDsFn    func(ctx context.Context, itemIDs []uint, filter models.BookingFilter, from, size int) ([]models.Booking, int64, error)
	findByItemStatusFn func(ctx context.Context, itemID uint, status models.BookingStatus) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	booking.ID = 1
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) UpdateStatusFromWaiting(ctx context.Context, id uint, status models.BookingStatus) (int64, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return 1, nil
}

func (m *mockBookingRepo) FindByBookerID(ctx context.Context, bookerID uint, filter models.BookingFilter, from, size int) ([]models.Booking, int64, error) {
	if m.findByBookerFn != nil {
		return m.findByBookerFn(ctx, bookerID, filter, from, size)
	}
	return nil, 0, nil
}

func (m *mockBookingRepo) FindByItemIDs(ctx context.Context, itemIDs []uint, filter models.BookingFilter, from, size int) ([]models.Booking, int64, error) {
	if m.findByItemIDsFn != nil {
		return m.findByItemIDsFn(ctx, itemIDs, filter, from, size)
	}
	return nil, 0, nil
}

func (m *mockBookingRepo) FindByItemIDAndStatus(ctx context.Context, itemID uint, status models.BookingStatus) ([]models.Booking, error) {
	if m.findByItemStatusFn != nil {
		return m.findByItemStatusFn(ctx, itemID, status)
	}
	return nil, nil
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.User, error)
	createFn   func(ctx context.Context, user *models.User) error
	saveFn     func(ctx context.Context, user *models.User) error
	deleteFn   func(ctx context.Context, user *models.User) error
	findAllFn  func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return &models.User{ID: id, Name: "user"}, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) Save(ctx context.Context, user *models.User) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, user *models.User) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, user)
	}
	return nil
}

// --- Mock ItemRepository ---

type mockItemRepo struct {
	findByIDFn      func(ctx context.Context, id uint) (*models.Item, error)
	createFn        func(ctx context.Context, item *models.Item) error
	saveFn          func(ctx context.Context, item *models.Item) error
	deleteFn        func(ctx context.Context, item *models.Item) error
	findByOwnerFn   func(ctx context.Context, ownerID uint, from, size int) ([]models.Item, error)
	idsByOwnerFn    func(ctx context.Context, ownerID uint) ([]uint, error)
	searchFn        func(ctx context.Context, text string, from, size int) ([]models.Item, error)
	findByRequestFn func(ctx context.Context, requestID uint) ([]models.Item, error)
}

func (m *mockItemRepo) Create(ctx context.Context, item *models.Item) error {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	item.ID = 1
	return nil
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockItemRepo) Save(ctx context.Context, item *models.Item) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, item)
	}
	return nil
}

func (m *mockItemRepo) Delete(ctx context.Context, item *models.Item) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, item)
	}
	return nil
}

func (m *mockItemRepo) FindByOwnerID(ctx context.Context, ownerID uint, from, size int) ([]models.Item, error) {
	if m.findByOwnerFn != nil {
		return m.findByOwnerFn(ctx, ownerID, from, size)
	}
	return nil, nil
}

func (m *mockItemRepo) IDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	if m.idsByOwnerFn != nil {
		return m.idsByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockItemRepo) Search(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, text, from, size)
	}
	return nil, nil
}

func (m *mockItemRepo) FindByRequestID(ctx context.Context, requestID uint) ([]models.Item, error) {
	if m.findByRequestFn != nil {
		return m.findByRequestFn(ctx, requestID)
	}
	return nil, nil
}

// --- Mock RequestRepository ---

type mockRequestRepo struct {
	createFn          func(ctx context.Context, request *models.ItemRequest) error
	findByIDFn        func(ctx context.Context, id uint) (*models.ItemRequest, error)
	findByRequesterFn func(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
	findByOthersFn    func(ctx context.Context, requesterID uint, from, size int) ([]models.ItemRequest, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, request *models.ItemRequest) error {
	if m.createFn != nil {
		return m.createFn(ctx, request)
	}
	request.ID = 1
	return nil
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRequestRepo) FindByRequesterID(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	if m.findByRequesterFn != nil {
		return m.findByRequesterFn(ctx, requesterID)
	}
	return nil, nil
}

func (m *mockRequestRepo) FindByOtherRequesters(ctx context.Context, requesterID uint, from, size int) ([]models.ItemRequest, error) {
	if m.findByOthersFn != nil {
		return m.findByOthersFn(ctx, requesterID, from, size)
	}
	return nil, nil
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	createFn       func(ctx context.Context, comment *models.Comment) error
	findByItemIDFn func(ctx context.Context, itemID uint) ([]models.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	comment.ID = 1
	return nil
}

func (m *mockCommentRepo) FindByItemID(ctx context.Context, itemID uint) ([]models.Comment, error) {
	if m.findByItemIDFn != nil {
		return m.findByItemIDFn(ctx, itemID)
	}
	return nil, nil
}
