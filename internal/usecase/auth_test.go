package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/invoicehub/invoicehub/internal/domain/errors"
	pkgAuth "github.com/invoicehub/invoicehub/internal/pkg/auth"
	testhelpers "github.com/invoicehub/invoicehub/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID string) (string, error) {
			return "token-" + userID, nil
		},
		ParseFn: func(token string) (string, error) {
			var id string
			if _, err := fmt.Sscanf(token, "token-%s", &id); err != nil {
				return "", pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "alice@example.com", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected user to have ID assigned")
	}
	if token != "token-"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "bob@example.com", "secret123"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "bob@example.com", "secret123"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.HasherStub{}, newStrategyStub())
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "password"},
		{"empty email", "", "password"},
		{"short password", "carol@example.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.email, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "carol@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad-password"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "carol@example.com", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-"+user.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseRejectionsIndistinguishable(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	hasher := &testhelpers.HasherStub{}
	uc := NewAuthUseCase(repo, hasher, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "dave@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := uc.Authenticate(ctx, "dave@example.com", "wrong-pass")
	_, _, unknownUser := uc.Authenticate(ctx, "ghost@example.com", "wrong-pass")
	if !errors.Is(wrongPass, domainErrors.ErrInvalidCredentials) || !errors.Is(unknownUser, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected both rejections to be ErrInvalidCredentials, got %v and %v", wrongPass, unknownUser)
	}

	// Both paths must run a hash comparison so response timing does not
	// reveal whether the account exists.
	if len(hasher.Compared) != 2 {
		t.Fatalf("expected a compare on both rejection paths, got %d compares", len(hasher.Compared))
	}
	if hasher.Compared[1] != dummyPasswordHash {
		t.Fatalf("expected dummy hash on the unknown-user path, got %q", hasher.Compared[1])
	}
}

func TestAuthUseCaseAuthenticateLookupFailurePropagates(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = errors.New("db down")
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, newStrategyStub())

	_, _, err := uc.Authenticate(context.Background(), "carol@example.com", "123456")
	if err == nil || errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected infrastructure error to propagate, got %v", err)
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub())
	if _, _, err := uc.Register(context.Background(), "user@example.com", "password"); err == nil {
		t.Fatal("expected hashing error")
	}
}

func TestAuthUseCaseIssueTokenError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{IssueFn: func(string) (string, error) {
		return "", fmt.Errorf("cannot issue token")
	}}
	uc := NewAuthUseCase(repo, &testhelpers.HasherStub{}, strategy)
	if _, _, err := uc.Register(context.Background(), "user@example.com", "password"); err == nil {
		t.Fatal("expected token issuing error")
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), &testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-user-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != "user-42" {
		t.Fatalf("expected id user-42, got %s", id)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
