package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

func newAuthFixture(t *testing.T) (*AuthService, *stubMemberRepo, *stubSessionStore, *TokenService) {
	t.Helper()
	members := newStubMemberRepo()
	sessions := newStubSessionStore()
	tokens, err := NewTokenService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	svc := NewAuthService(members, tokens, sessions, zerolog.Nop())
	return svc, members, sessions, tokens
}

func TestAuthService_Register(t *testing.T) {
	svc, members, _, tokens := newAuthFixture(t)
	ctx := context.Background()

	member, token, err := svc.Register(ctx, ports.RegisterInput{
		Email:       "ana@example.com",
		Password:    "s3cret-pass",
		Name:        "Ana",
		YearOfBirth: 1990,
		Gender:      true,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if member.ID == "" {
		t.Fatal("expected assigned member id")
	}
	if member.IsAdmin {
		t.Fatal("registered members must not be admins")
	}
	if member.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if !VerifyPassword("s3cret-pass", member.PasswordHash) {
		t.Fatal("stored hash does not verify against the plaintext")
	}

	id, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if id != member.ID {
		t.Fatalf("token embeds %q, want %q", id, member.ID)
	}

	if _, err := members.FindByEmail(ctx, "ana@example.com"); err != nil {
		t.Fatalf("member not persisted: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	input := ports.RegisterInput{Email: "ana@example.com", Password: "pass1234", Name: "Ana"}
	if _, _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, _, err := svc.Register(ctx, input); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@b.com"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _, tokens := newAuthFixture(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, ports.RegisterInput{Email: "ana@example.com", Password: "pass1234", Name: "Ana"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	member, token, err := svc.Login(ctx, "ana@example.com", "pass1234")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if member.ID != registered.ID {
		t.Fatalf("logged in as %q, want %q", member.ID, registered.ID)
	}
	if id, err := tokens.Verify(token); err != nil || id != registered.ID {
		t.Fatalf("token verify = (%q, %v), want (%q, nil)", id, err, registered.ID)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, ports.RegisterInput{Email: "ana@example.com", Password: "pass1234", Name: "Ana"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ana@example.com", "wrong-pass"},
		{"unknown email", "nobody@example.com", "pass1234"},
		{"empty password", "ana@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, ports.RegisterInput{Email: "ana@example.com", Password: "pass1234", Name: "Ana"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	summary, handle, err := svc.LoginSession(ctx, "ana@example.com", "pass1234")
	if err != nil {
		t.Fatalf("LoginSession returned error: %v", err)
	}
	if summary.ID != registered.ID {
		t.Fatalf("session summary id = %q, want %q", summary.ID, registered.ID)
	}

	resolved, err := sessions.Resolve(ctx, handle)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolved == nil || resolved.ID != registered.ID {
		t.Fatalf("session does not resolve to the member: %+v", resolved)
	}

	if err := svc.Logout(ctx, handle); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	resolved, err = sessions.Resolve(ctx, handle)
	if err != nil {
		t.Fatalf("Resolve after Logout returned error: %v", err)
	}
	if resolved != nil {
		t.Fatal("destroyed session still resolves")
	}

	// logging out twice is a no-op
	if err := svc.Logout(ctx, handle); err != nil {
		t.Fatalf("second Logout returned error: %v", err)
	}
}

func TestAuthService_LoginSession_BadCredentials(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := svc.LoginSession(ctx, "nobody@example.com", "pass1234"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatal("failed login must not create a session")
	}
}
