package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists issued refresh tokens so they can be
// rotated and revoked.
type RefreshTokenRepository interface {
	Create(ctx context.Context, userID, token string, expiresAt time.Time) error
	GetUserID(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}
