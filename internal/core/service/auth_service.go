package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// AuthService implements registration and the two login modes: stateless
// bearer tokens for the JSON API and server-side sessions for the rendered
// page surface.
type AuthService struct {
	members  ports.MemberRepository
	tokens   *TokenService
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(members ports.MemberRepository, tokens *TokenService, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{members: members, tokens: tokens, sessions: sessions, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Member, string, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, "", domain.ErrInvalidInput
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	now := time.Now().UTC()
	member := &domain.Member{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		YearOfBirth:  input.YearOfBirth,
		Gender:       input.Gender,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.members.Create(ctx, member)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", fmt.Errorf("register: issue token: %w", err)
	}

	s.log.Info().Str("member_id", created.ID).Msg("member registered")
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Member, string, error) {
	member, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(member.ID)
	if err != nil {
		return nil, "", fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("member_id", member.ID).Msg("login")
	return member, token, nil
}

func (s *AuthService) LoginSession(ctx context.Context, email, password string) (*domain.MemberSummary, string, error) {
	member, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	summary := member.Summary()
	handle, err := s.sessions.Create(ctx, summary)
	if err != nil {
		return nil, "", fmt.Errorf("login session: %w", err)
	}

	s.log.Info().Str("member_id", member.ID).Msg("session login")
	return &summary, handle, nil
}

func (s *AuthService) Logout(ctx context.Context, handle string) error {
	if handle == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, handle)
}

// authenticate looks up the member by email and verifies the password.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.Member, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	member, err := s.members.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, member.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return member, nil
}
