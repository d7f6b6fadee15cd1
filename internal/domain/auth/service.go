package auth

import "context"

// AuthService defines registration, login and session operations.
type AuthService interface {
	// Register creates a user, allocating the next ordinal employee code.
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)

	// Login verifies credentials and issues access + refresh tokens.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)

	// Refresh rotates a refresh token into a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile returns the authenticated user's directory entry.
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
}
