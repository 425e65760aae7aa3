package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/adarshshan/stationaryPro/internal/domain"
	"github.com/adarshshan/stationaryPro/internal/repository"
)

// Service is the identity service: it exchanges a mobile number and a
// one-time code for a user record and a signed credential.
type Service struct {
	users    repository.UserStore
	verifier CodeVerifier
	tokens   *TokenManager
}

func NewService(users repository.UserStore, verifier CodeVerifier, tokens *TokenManager) *Service {
	return &Service{
		users:    users,
		verifier: verifier,
		tokens:   tokens,
	}
}

// Login verifies the code, finds or creates the user for the mobile number
// and issues a credential. An invalid code leaves the user store untouched.
func (s *Service) Login(ctx context.Context, mobile, code string) (domain.User, string, error) {
	if !s.verifier.Verify(mobile, code) {
		return domain.User{}, "", ErrInvalidCode
	}

	user, err := s.users.GetByMobile(ctx, mobile)
	if errors.Is(err, repository.ErrUserNotFound) {
		user = domain.User{ID: uuid.New().String(), Mobile: mobile}
		err = s.users.Create(ctx, user)
		if errors.Is(err, repository.ErrUserExists) {
			// lost a create race; the winner's record is the user
			user, err = s.users.GetByMobile(ctx, mobile)
		}
	}
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Authorize validates a credential and yields the embedded identity.
func (s *Service) Authorize(tokenString string) (Identity, error) {
	return s.tokens.Verify(tokenString)
}
