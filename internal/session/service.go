package session

import (
	"context"
)

type Service struct {
	creds   *Credentials
	tokens  *Tokens
	revoked RevocationStore
}

func NewService(
	creds *Credentials,
	tokens *Tokens,
	revoked RevocationStore,
) *Service {
	return &Service{
		creds:   creds,
		tokens:  tokens,
		revoked: revoked,
	}
}

func (s *Service) Login(
	ctx context.Context,
	email string,
	password string,
) (string, Principal, error) {

	if err := s.creds.Check(email, password); err != nil {
		return "", Principal{}, err
	}
	return s.tokens.Issue(s.creds.email)
}

// Authenticate validates the token and rejects revoked ones.
func (s *Service) Authenticate(
	ctx context.Context,
	token string,
) (Principal, error) {

	p, err := s.tokens.Parse(token)
	if err != nil {
		return Principal{}, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, p.TokenID)
	if err != nil {
		return Principal{}, err
	}
	if revoked {
		return Principal{}, ErrInvalidToken
	}
	return p, nil
}

func (s *Service) Logout(
	ctx context.Context,
	p Principal,
) error {
	return s.revoked.Revoke(ctx, p.TokenID, p.ExpiresAt)
}
