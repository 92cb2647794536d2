package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"diaryhub/internal/domain"
	"diaryhub/internal/repository"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// TokenService issues and verifies bearer tokens. Every issued token is also
// recorded in the store so it can be revoked before it expires.
type TokenService struct {
	tokenRepo repository.TokenRepository
	secret    []byte
	ttl       time.Duration
}

func NewTokenService(tokenRepo repository.TokenRepository, secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		tokenRepo: tokenRepo,
		secret:    []byte(secret),
		ttl:       ttl,
	}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(s.ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	if err := s.tokenRepo.Save(ctx, &domain.AuthToken{Token: token, Valid: true}); err != nil {
		return "", fmt.Errorf("recording token: %w", err)
	}
	return token, nil
}

// Verify returns the user id encoded in the token. Revocation is checked
// after the signature and expiry so a forged token never reads the store's
// verdict.
func (s *TokenService) Verify(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	sub, _ := claims.GetSubject()
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	record, err := s.tokenRepo.Get(ctx, tokenStr)
	if err != nil {
		return uuid.Nil, err
	}
	if record != nil && !record.Valid {
		return uuid.Nil, ErrTokenRevoked
	}

	return userID, nil
}

func (s *TokenService) Revoke(ctx context.Context, tokenStr string) error {
	return s.tokenRepo.Invalidate(ctx, tokenStr)
}
