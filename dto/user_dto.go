package dto

import (
	"strings"

	"github.com/uchkunrakhimow/edtech-platform/domain"
)

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,notblank,trimmin=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,numeric,min=7,max=20"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"omitempty,oneof=ADMIN TEACHER USER"`
}

type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,trimmin=2,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,numeric,min=7,max=20"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	Role        *string `json:"role" binding:"omitempty,oneof=ADMIN TEACHER USER"`
}

type UserListQuery struct {
	PageQuery
	Role       string `form:"role" binding:"omitempty,oneof=ADMIN TEACHER USER"`
	SearchTerm string `form:"searchTerm" binding:"omitempty,max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func MapCreateUserRequestToUser(req *CreateUserRequest) *domain.User {
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	return &domain.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(req.Email),
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        role,
	}
}

func MapUpdateUserRequest(req *UpdateUserRequest) domain.UserUpdate {
	update := domain.UserUpdate{
		Name:        trimmed(req.Name),
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
	}
	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		update.Email = &email
	}
	return update
}

func (q UserListQuery) ToFilter() (domain.UserFilter, error) {
	page, err := q.ToPagination()
	if err != nil {
		return domain.UserFilter{}, err
	}
	return domain.UserFilter{Pagination: page, Role: q.Role, SearchTerm: strings.TrimSpace(q.SearchTerm)}, nil
}
