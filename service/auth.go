package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo    domain.UserRepository
	accessToken *utils.JWTManager
}

func NewAuthService(userRepo domain.UserRepository, accessToken *utils.JWTManager) domain.AuthUseCase {
	return &authService{
		userRepo:    userRepo,
		accessToken: accessToken,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return nil, &domain.UnauthorizedError{}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Debug().Str("user_id", user.ID).Msg("password comparison failed")
		return nil, &domain.UnauthorizedError{}
	}

	accessToken, err := s.accessToken.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &domain.AuthTokens{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.accessToken.TokenDuration().Seconds()),
		User:        user,
	}, nil
}
