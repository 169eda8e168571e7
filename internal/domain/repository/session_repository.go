package repository

import (
	"context"
	"time"
)

// SessionRepository tracks issued token ids so sessions can be revoked at
// logout. Backed by redis in production.
type SessionRepository interface {
	StoreToken(ctx context.Context, kind string, userID int, tokenID string, ttl time.Duration) error
	DeleteToken(ctx context.Context, kind string, userID int, tokenID string) error
	TokenExists(ctx context.Context, kind string, userID int, tokenID string) (bool, error)
}
