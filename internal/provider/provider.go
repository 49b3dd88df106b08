// Package provider implements the domain.AuthProvider contract against a
// hosted Supabase-compatible backend: a GoTrue auth API under /auth/v1 and
// a PostgREST data API under /rest/v1.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/westernedge/portal/internal/domain"
)

// Error is a failure reported by the provider itself, as opposed to a
// transport problem. Message carries the provider's human-readable text,
// which the forms display verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPProvider talks to the hosted service over its REST APIs. One instance
// is shared by the whole process; *http.Client is safe for concurrent use.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ domain.AuthProvider = (*HTTPProvider)(nil)

// New creates a provider client for the given project URL and anon API key.
func New(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SignIn exchanges credentials for a session via the password grant.
func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var sess domain.Session
	if err := p.doJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", body, &sess); err != nil {
		return nil, err
	}
	if sess.AccessToken == "" {
		return nil, fmt.Errorf("provider returned a session without an access token")
	}
	return &sess, nil
}

// SignUp creates an account. The metadata is stored on the user record and
// the confirmation email links back to confirmRedirectURL.
func (p *HTTPProvider) SignUp(ctx context.Context, params domain.SignUpParams) (*domain.User, error) {
	path := "/auth/v1/signup"
	if params.ConfirmRedirectURL != "" {
		path += "?redirect_to=" + url.QueryEscape(params.ConfirmRedirectURL)
	}

	body := map[string]any{
		"email":    params.Email,
		"password": params.Password,
	}
	if len(params.Metadata) > 0 {
		body["data"] = params.Metadata
	}

	var user domain.User
	if err := p.doJSON(ctx, http.MethodPost, path, "", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SendPasswordResetEmail asks the provider to mail a reset link.
func (p *HTTPProvider) SendPasswordResetEmail(ctx context.Context, email, resetRedirectURL string) error {
	path := "/auth/v1/recover"
	if resetRedirectURL != "" {
		path += "?redirect_to=" + url.QueryEscape(resetRedirectURL)
	}
	return p.doJSON(ctx, http.MethodPost, path, "", map[string]string{"email": email}, nil)
}

// UpdateCurrentUserPassword changes the password of the token's user.
func (p *HTTPProvider) UpdateCurrentUserPassword(ctx context.Context, accessToken, newPassword string) error {
	if accessToken == "" {
		return domain.ErrNoSession
	}
	body := map[string]string{"password": newPassword}
	return p.doJSON(ctx, http.MethodPut, "/auth/v1/user", accessToken, body, nil)
}

// GetCurrentSessionUser resolves an access token into its user.
func (p *HTTPProvider) GetCurrentSessionUser(ctx context.Context, accessToken string) (*domain.User, error) {
	if accessToken == "" {
		return nil, domain.ErrNoSession
	}

	var user domain.User
	err := p.doJSON(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) && (perr.Status == http.StatusUnauthorized || perr.Status == http.StatusForbidden) {
			return nil, domain.ErrNoSession
		}
		return nil, err
	}
	if user.ID == "" {
		return nil, domain.ErrNoSession
	}
	return &user, nil
}

// SignOut revokes the session behind the access token. A token the provider
// no longer recognizes is treated as already signed out.
func (p *HTTPProvider) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	err := p.doJSON(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
	var perr *Error
	if errors.As(err, &perr) && perr.Status == http.StatusUnauthorized {
		return nil
	}
	return err
}

// QueryProfileByID fetches the single profile row for a user id. The
// request asks PostgREST for a singular object, so "no rows" surfaces as a
// 406 which is mapped to domain.ErrProfileNotFound.
func (p *HTTPProvider) QueryProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	path := "/rest/v1/profiles?select=first_name,last_name&id=eq." + url.QueryEscape(userID)

	req, err := p.newRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	var profile domain.Profile
	err = p.send(req, &profile)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) && perr.Status == http.StatusNotAcceptable {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// doJSON issues a request and decodes a JSON response into out (which may
// be nil for calls whose body is irrelevant).
func (p *HTTPProvider) doJSON(ctx context.Context, method, path, accessToken string, body, out any) error {
	req, err := p.newRequest(ctx, method, path, accessToken, body)
	if err != nil {
		return err
	}
	return p.send(req, out)
}

func (p *HTTPProvider) newRequest(ctx context.Context, method, path, accessToken string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal provider request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}

	req.Header.Set("apikey", p.apiKey)
	// The data and auth APIs both expect a bearer token; requests made on
	// behalf of a signed-in user carry their access token, everything else
	// uses the anon key.
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (p *HTTPProvider) send(req *http.Request, out any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}

// errorMessage extracts the human-readable text from a provider error body.
// GoTrue and PostgREST use different field names across versions, so every
// known spelling is tried before falling back to a generic message.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, s := range []string{body.Msg, body.Message, body.ErrorDescription, body.Error} {
			if s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("provider returned status %d", status)
}

