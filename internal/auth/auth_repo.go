package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:"

// TokenStore keeps revoked token ids until the token would have expired on
// its own. It also serves middleware.TokenDenylist.
//
//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type tokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) TokenStore {
	return &tokenStore{rdb: rdb}
}

func (s *tokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *tokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.rdb.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
