package domain

import (
	"context"
)

type UserFilter struct {
	Pagination
	Role       string
	SearchTerm string
}

type UserList struct {
	Users []User `json:"users"`
	PageMeta
}

// UserUpdate carries only the fields present in a PUT body.
type UserUpdate struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Role        *string
	Password    *string
}

func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PhoneNumber == nil && u.Role == nil && u.Password == nil
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetAllUsers(ctx context.Context, filter UserFilter) ([]User, int64, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserUseCase interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetAllUsers(ctx context.Context, filter UserFilter) (*UserList, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}
