package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentgate/internal/pkg/jwt"
)

func newAuth(users *mockUserRepo) *Auth {
	return NewAuthUsecase(users, jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour), nil)
}

func TestRegister_NormalizesEmailAndScrubsHash(t *testing.T) {
	users := newMockUserRepo()
	uc := newAuth(users)

	usr, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Email:    "  User@Example.COM ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "user@example.com" {
		t.Fatalf("email = %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if access == "" || refresh == "" {
		t.Fatalf("both tokens should be issued")
	}
	if users.users["user@example.com"].PasswordHash == "correct horse" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	uc := newAuth(newMockUserRepo())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	uc := newAuth(users)

	if _, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "long enough"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "A@B.C", Password: "long enough"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newMockUserRepo()
	uc := newAuth(users)

	if _, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "long enough"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := newAuth(newMockUserRepo())

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "ghost@b.c", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_RotatesTokens(t *testing.T) {
	users := newMockUserRepo()
	uc := newAuth(users)

	_, _, refresh, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "long enough"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	access2, refresh2, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("refresh should issue a new token pair")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	users := newMockUserRepo()
	uc := newAuth(users)

	_, access, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "long enough"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("an access token must not refresh, got %v", err)
	}
}

func TestRefresh_EmptyToken(t *testing.T) {
	uc := newAuth(newMockUserRepo())

	if _, _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
