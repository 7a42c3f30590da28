package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error

	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle signs in (or provisions) a user from a verified Google account
	LoginWithGoogle(ctx context.Context, googleEmail string, googleName string, googleID string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates the refresh token: the presented token is revoked
	// and a fresh access/refresh pair is issued. A revoked or expired token
	// yields ErrRefreshTokenRevoked.
	RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error

	Profile(ctx context.Context, userID string) (ProfileResponse, error)
}
