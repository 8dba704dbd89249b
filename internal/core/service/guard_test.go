package service

import (
	"errors"
	"testing"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

func TestGuard_RequireAuthenticated(t *testing.T) {
	guard := NewGuard()

	if err := guard.RequireAuthenticated(domain.Principal{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous principal: expected ErrUnauthorized, got %v", err)
	}
	if err := guard.RequireAuthenticated(domain.Principal{ID: "member_1"}); err != nil {
		t.Fatalf("authenticated principal: unexpected error %v", err)
	}
}

func TestGuard_RequireAdmin(t *testing.T) {
	guard := NewGuard()

	cases := []struct {
		name      string
		principal domain.Principal
		want      error
	}{
		{"anonymous", domain.Principal{}, domain.ErrUnauthorized},
		{"regular member", domain.Principal{ID: "member_1"}, domain.ErrForbidden},
		{"admin", domain.Principal{ID: "admin_1", IsAdmin: true}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := guard.RequireAdmin(tc.principal)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGuard_RequireSelfOrAdmin(t *testing.T) {
	guard := NewGuard()

	cases := []struct {
		name      string
		principal domain.Principal
		target    string
		want      error
	}{
		{"anonymous", domain.Principal{}, "member_1", domain.ErrUnauthorized},
		{"owner", domain.Principal{ID: "member_1"}, "member_1", nil},
		{"other member", domain.Principal{ID: "member_2"}, "member_1", domain.ErrForbidden},
		{"admin on any target", domain.Principal{ID: "admin_1", IsAdmin: true}, "member_1", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := guard.RequireSelfOrAdmin(tc.principal, tc.target)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
