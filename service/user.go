package service

import (
	"context"
	"errors"

	"github.com/uchkunrakhimow/edtech-platform/domain"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) domain.UserUseCase {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	taken, err := s.repo.ExistsByEmail(ctx, user.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewConflictError(domain.MsgEmailAlreadyTaken)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context, filter domain.UserFilter) (*domain.UserList, error) {
	users, total, err := s.repo.GetAllUsers(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.UserList{
		Users:    users,
		PageMeta: domain.NewPageMeta(total, filter.Pagination),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *userService) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		taken, err := s.repo.ExistsByEmail(ctx, *update.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewConflictError(domain.MsgEmailAlreadyTaken)
		}
	}

	if update.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hashed)
		update.Password = &h
	}

	if update.IsEmpty() {
		return user, nil
	}
	return s.repo.UpdateUser(ctx, id, update)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.repo.GetUserByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, id)
}
