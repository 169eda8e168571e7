package cache

import (
	"context"
	"fmt"
	"time"

	domainRepo "oncoportal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) domainRepo.SessionRepository {
	return &redisSessionStore{client: client}
}

func sessionKey(kind string, userID int, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", kind, userID, tokenID)
}

func (s *redisSessionStore) StoreToken(ctx context.Context, kind string, userID int, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(kind, userID, tokenID), "1", ttl).Err()
}

func (s *redisSessionStore) DeleteToken(ctx context.Context, kind string, userID int, tokenID string) error {
	return s.client.Del(ctx, sessionKey(kind, userID, tokenID)).Err()
}

func (s *redisSessionStore) TokenExists(ctx context.Context, kind string, userID int, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
