package domain

import "context"

// SignUpParams carries everything the provider needs to create an account.
// Metadata travels with the account record; ConfirmRedirectURL is where the
// confirmation email's link lands.
type SignUpParams struct {
	Email              string
	Password           string
	Metadata           map[string]string
	ConfirmRedirectURL string
}

// AuthProvider defines the contract with the hosted authentication and data
// service. It lives in the domain because it is a requirement OF the
// screens, not of any particular provider SDK. A single process-wide
// implementation is constructed at startup and injected into every handler,
// which also lets tests substitute a double.
type AuthProvider interface {
	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignUp creates a new account and triggers the confirmation email.
	// The returned user is unconfirmed until the email link is followed.
	SignUp(ctx context.Context, params SignUpParams) (*User, error)

	// SendPasswordResetEmail asks the provider to mail a reset link that
	// lands on resetRedirectURL.
	SendPasswordResetEmail(ctx context.Context, email, resetRedirectURL string) error

	// UpdateCurrentUserPassword changes the password of the user the access
	// token belongs to.
	UpdateCurrentUserPassword(ctx context.Context, accessToken, newPassword string) error

	// GetCurrentSessionUser resolves an access token into its user.
	// Returns ErrNoSession when the token is absent, expired or revoked.
	GetCurrentSessionUser(ctx context.Context, accessToken string) (*User, error)

	// SignOut revokes the session behind the access token.
	SignOut(ctx context.Context, accessToken string) error

	// QueryProfileByID fetches the profile row for a user id, expecting at
	// most one row. Returns ErrProfileNotFound when none exists.
	QueryProfileByID(ctx context.Context, userID string) (*Profile, error)
}
