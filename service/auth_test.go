package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	calls := &callLog{}
	repo := newFakeUserRepo(calls)
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo.users["u1"] = &domain.User{ID: "u1", Email: "ada@example.com", Password: string(hashed), Role: domain.RoleAdmin}

	jwtManager := utils.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	svc := NewAuthService(repo, jwtManager)

	tokens, err := svc.Login(context.Background(), " ADA@example.com ", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tokens.ExpiresIn != 3600 || tokens.User.ID != "u1" {
		t.Fatalf("tokens: got=%+v", tokens)
	}
	userID, role, err := jwtManager.VerifyToken(tokens.AccessToken)
	if err != nil || userID != "u1" || role != domain.RoleAdmin {
		t.Fatalf("token claims: %s/%s err=%v", userID, role, err)
	}

	var ua *domain.UnauthorizedError
	if _, err := svc.Login(context.Background(), "ada@example.com", "wrong"); !errors.As(err, &ua) {
		t.Fatalf("wrong password: got=%v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "secret1"); !errors.As(err, &ua) {
		t.Fatalf("unknown email: got=%v", err)
	}
}
