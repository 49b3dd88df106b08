package domain

// User is the provider-issued account record. The provider owns the full
// object; this application only reads the identity fields it renders.
type User struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"user_metadata,omitempty"`
}

// Session is the provider-issued proof that a user is authenticated. The
// access token is treated as opaque and is only ever echoed back to the
// provider.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
	User        *User  `json:"user,omitempty"`
}

// Profile is the persisted display record keyed by user id. It is a
// read-only projection from the provider's data API.
type Profile struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName returns the name the dashboard greets the user with,
// falling back to the account email when no profile name exists.
func (p *Profile) DisplayName(fallbackEmail string) string {
	if p != nil && p.FirstName != "" {
		return p.FirstName
	}
	return fallbackEmail
}
