// domain/auth.go
package domain

import (
	"context"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*AuthTokens, error)
}

type AuthTokens struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	User        *User  `json:"user"`
}
