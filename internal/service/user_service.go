package service

import (
	"context"
	"errors"

	"gearshare/internal/models"
	"gearshare/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type UserUpdate struct {
	Name  *string
	Email *string
}

type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id uint, upd UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func NewUserService(users repository.UserRepository, log zerolog.Logger) UserService {
	return &userService{users: users, log: log}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("user %d does not exist", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflictf("email %s is already registered", user.Email)
		}
		return nil, err
	}
	s.log.Info().Uint("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, upd UserUpdate) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflictf("email %s is already registered", user.Email)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user); err != nil {
		return err
	}
	s.log.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}
