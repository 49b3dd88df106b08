package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"

	"github.com/westernedge/portal/internal/authmode"
	"github.com/westernedge/portal/internal/domain"
	"github.com/westernedge/portal/internal/events"
	"github.com/westernedge/portal/internal/middleware"
	"github.com/westernedge/portal/internal/provider"
	"github.com/westernedge/portal/internal/rendering"
	"github.com/westernedge/portal/internal/view"
	"github.com/westernedge/portal/internal/view/dto/auth"
	"github.com/westernedge/portal/web/src/templates/layouts"
	"github.com/westernedge/portal/web/src/templates/pages"
)

const (
	authCookieName  = "auth_token"
	modeSessionName = "auth-view"
	modeSessionKey  = "mode"

	// genericFailure is shown when a provider call fails for any reason
	// other than a provider-reported error with its own message.
	genericFailure = "Something went wrong. Please try again."
)

// AuthHandler handles the authentication screens: the mode-switching entry
// page, the three unauthenticated forms, and the update-password screen.
type AuthHandler struct {
	provider domain.AuthProvider
	recorder *events.Recorder
	renderer rendering.Renderer
	baseURL  string
}

// NewAuthHandler creates a new AuthHandler. The provider client is the
// single process-wide instance; tests pass a double.
func NewAuthHandler(p domain.AuthProvider, recorder *events.Recorder, renderer rendering.Renderer, baseURL string) *AuthHandler {
	return &AuthHandler{
		provider: p,
		recorder: recorder,
		renderer: renderer,
		baseURL:  baseURL,
	}
}

// HomeGet renders the entry page (GET /). Exactly one of the three auth
// screens is shown, selected by the mode stored in the session.
func (h *AuthHandler) HomeGet(c echo.Context) error {
	mode := h.currentMode(c)
	flashes := view.GetFlashData(c)

	var pageContent gomponents.Node
	var title string
	switch mode {
	case authmode.Register:
		pageContent = pages.Register(auth.RegisterData{})
		title = "Create Account"
	case authmode.Forgot:
		pageContent = pages.ForgotPassword(auth.ForgotPasswordData{})
		title = "Reset Password"
	default:
		pageContent = pages.Login(auth.LoginData{})
		title = "Sign In"
	}

	return c.Render(http.StatusOK, "", layouts.Base(title, flashes, pageContent))
}

// SwitchMode applies a screen-change request (GET /auth/switch/:mode) and
// returns to the entry page. Requests without a legal transition keep the
// current screen.
func (h *AuthHandler) SwitchMode(c echo.Context) error {
	target, err := authmode.Parse(c.Param("mode"))
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Rejected unknown auth mode", "mode", c.Param("mode"))
		return c.Redirect(http.StatusSeeOther, "/")
	}

	current := h.currentMode(c)
	next, err := authmode.Transition(current, target)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Rejected auth mode transition", "from", current, "to", target)
	}
	h.saveMode(c, next)
	return c.Redirect(http.StatusSeeOther, "/")
}

// LoginPost handles the sign-in submission (POST /auth/login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	data := auth.LoginData{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Remember: c.FormValue("remember") != "",
	}

	// An invalid form is never submitted to the provider: the fragment is
	// simply re-rendered with the submit control still disabled.
	if !data.Valid() {
		return h.renderLogin(c, data)
	}

	sess, err := h.provider.SignIn(c.Request().Context(), data.Email, data.Password)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed login attempt", "email", data.Email, "error", err)
		data.Error = displayMessage(err)
		data.Password = ""
		return h.renderLogin(c, data)
	}

	h.setAuthCookie(c, sess.AccessToken, data.Remember)

	var userID string
	if sess.User != nil {
		userID = sess.User.ID
	}
	h.recorder.Publish(c.Request().Context(), events.TopicSignedIn, userID, data.Email)

	// No forced navigation: the session gate on the next dashboard visit
	// decides where the user lands.
	data = auth.LoginData{Success: "Signed in successfully. You can open your dashboard."}
	return h.renderLogin(c, data)
}

// RegisterPost handles the registration submission (POST /auth/register).
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	data := bindRegister(c)

	if !data.Valid() {
		return h.renderRegister(c, data)
	}

	user, err := h.provider.SignUp(c.Request().Context(), domain.SignUpParams{
		Email:    data.Email,
		Password: data.Password,
		Metadata: map[string]string{
			"first_name": data.FirstName,
			"last_name":  data.LastName,
		},
		ConfirmRedirectURL: h.baseURL + "/auth/callback",
	})
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Registration failed", "email", data.Email, "error", err)
		// Failure keeps every field so the user can correct and resubmit.
		data.Error = displayMessage(err)
		return h.renderRegister(c, data)
	}

	h.recorder.Publish(c.Request().Context(), events.TopicSignedUp, user.ID, data.Email)

	// Success clears all fields, including the terms flag.
	data = auth.RegisterData{Success: "Account created! Please check your email to confirm."}
	return h.renderRegister(c, data)
}

// RegisterCheckPost re-renders the registration fragment for the current
// field values (POST /auth/register/check). It never submits anything; it
// exists so the strength meter and submit button track each keystroke.
func (h *AuthHandler) RegisterCheckPost(c echo.Context) error {
	return h.renderFragment(c, pages.RegisterForm(bindRegister(c)))
}

// ForgotPasswordPost handles the reset-request submission
// (POST /auth/forgot-password).
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	data := auth.ForgotPasswordData{Email: c.FormValue("email")}

	if !data.Valid() {
		return h.renderForgot(c, data)
	}

	err := h.provider.SendPasswordResetEmail(c.Request().Context(), data.Email, h.baseURL+"/update-password")
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Password reset request failed", "email", data.Email, "error", err)
		data.Error = displayMessage(err)
		return h.renderForgot(c, data)
	}

	h.recorder.Publish(c.Request().Context(), events.TopicResetRequested, "", data.Email)

	// Success clears the email and freezes the form until a mode switch.
	data = auth.ForgotPasswordData{Success: "Check your email for a password reset link."}
	return h.renderForgot(c, data)
}

// UpdatePasswordGet renders the choose-a-new-password screen
// (GET /update-password), reached from the reset email link.
func (h *AuthHandler) UpdatePasswordGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	return c.Render(http.StatusOK, "", layouts.Base("Update Password", flashes, pages.UpdatePassword(auth.UpdatePasswordData{})))
}

// UpdatePasswordPost handles the new-password submission
// (POST /update-password).
func (h *AuthHandler) UpdatePasswordPost(c echo.Context) error {
	data := auth.UpdatePasswordData{
		Password:     c.FormValue("password"),
		ShowPassword: c.FormValue("show_password") != "",
	}

	if !data.Valid() {
		return h.renderUpdatePassword(c, data)
	}

	token := h.readAuthCookie(c)
	err := h.provider.UpdateCurrentUserPassword(c.Request().Context(), token, data.Password)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Password update failed", "error", err)
		if errors.Is(err, domain.ErrNoSession) {
			data.Error = "Your reset link has expired. Please request a new one."
		} else {
			data.Error = displayMessage(err)
		}
		return h.renderUpdatePassword(c, data)
	}

	h.recorder.Publish(c.Request().Context(), events.TopicPasswordUpdated, "", "")

	// The success fragment carries the deferred redirect back to the entry
	// route; it fires after two seconds unless the element is replaced.
	data = auth.UpdatePasswordData{Success: "Password updated successfully! Redirecting to login..."}
	return h.renderUpdatePassword(c, data)
}

// CallbackGet is the landing route for the confirmation email link
// (GET /auth/callback).
func (h *AuthHandler) CallbackGet(c echo.Context) error {
	view.SetFlashSuccess(c, "Email confirmed! You can now sign in.")
	h.saveMode(c, authmode.Login)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles the sign-out submission (POST /auth/logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.readAuthCookie(c)
	if err := h.provider.SignOut(c.Request().Context(), token); err != nil {
		// The cookie is cleared regardless; a failed revocation only means
		// the provider-side session lives until it expires.
		middleware.FromContext(c.Request().Context()).Warn("Provider sign-out failed", "error", err)
	}

	h.setAuthCookie(c, "", false)
	h.recorder.Publish(c.Request().Context(), events.TopicSignedOut, "", "")

	view.SetFlashSuccess(c, "You have been signed out.")
	if isHTMX(c) {
		c.Response().Header().Set("HX-Redirect", "/")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// --- rendering helpers ---

// renderLogin returns the login fragment for htmx submissions, or the full
// entry page for plain form posts.
func (h *AuthHandler) renderLogin(c echo.Context, data auth.LoginData) error {
	if isHTMX(c) {
		return h.renderFragment(c, pages.LoginForm(data))
	}
	return c.Render(http.StatusOK, "", layouts.Base("Sign In", view.FlashData{}, pages.Login(data)))
}

func (h *AuthHandler) renderRegister(c echo.Context, data auth.RegisterData) error {
	if isHTMX(c) {
		return h.renderFragment(c, pages.RegisterForm(data))
	}
	return c.Render(http.StatusOK, "", layouts.Base("Create Account", view.FlashData{}, pages.Register(data)))
}

func (h *AuthHandler) renderForgot(c echo.Context, data auth.ForgotPasswordData) error {
	if isHTMX(c) {
		return h.renderFragment(c, pages.ForgotPasswordForm(data))
	}
	return c.Render(http.StatusOK, "", layouts.Base("Reset Password", view.FlashData{}, pages.ForgotPassword(data)))
}

func (h *AuthHandler) renderUpdatePassword(c echo.Context, data auth.UpdatePasswordData) error {
	if isHTMX(c) {
		return h.renderFragment(c, pages.UpdatePasswordForm(data))
	}
	return c.Render(http.StatusOK, "", layouts.Base("Update Password", view.FlashData{}, pages.UpdatePassword(data)))
}

func (h *AuthHandler) renderFragment(c echo.Context, component gomponents.Node) error {
	buf, err := h.renderer.RenderComponent(component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func bindRegister(c echo.Context) auth.RegisterData {
	return auth.RegisterData{
		FirstName:     c.FormValue("first_name"),
		LastName:      c.FormValue("last_name"),
		Email:         c.FormValue("email"),
		Password:      c.FormValue("password"),
		AgreedToTerms: c.FormValue("agreed_to_terms") != "",
	}
}

// displayMessage maps any provider-call failure onto the text shown in the
// form's error region: the provider's own message verbatim when it reported
// one, a generic message for transport-level failures.
func displayMessage(err error) string {
	var perr *provider.Error
	if errors.As(err, &perr) {
		return perr.Message
	}
	return genericFailure
}

// --- mode persistence ---

func (h *AuthHandler) currentMode(c echo.Context) authmode.Mode {
	sess, err := session.Get(modeSessionName, c)
	if err != nil {
		return authmode.Login
	}
	raw, ok := sess.Values[modeSessionKey].(string)
	if !ok {
		return authmode.Login
	}
	mode, err := authmode.Parse(raw)
	if err != nil {
		return authmode.Login
	}
	return mode
}

func (h *AuthHandler) saveMode(c echo.Context, mode authmode.Mode) {
	sess, err := session.Get(modeSessionName, c)
	if err != nil {
		return
	}
	sess.Values[modeSessionKey] = mode.String()
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to save auth mode session", "error", err)
	}
}

// --- auth cookie ---

func (h *AuthHandler) readAuthCookie(c echo.Context) string {
	cookie, err := c.Cookie(authCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setAuthCookie creates or clears the access-token cookie. A remembered
// session lasts a week; otherwise the cookie expires with the browser tab.
func (h *AuthHandler) setAuthCookie(c echo.Context, token string, remember bool) {
	cookie := new(http.Cookie)
	cookie.Name = authCookieName
	cookie.Value = token
	cookie.Path = "/"
	if token == "" {
		cookie.MaxAge = -1
	} else if remember {
		cookie.Expires = time.Now().UTC().Add(7 * 24 * time.Hour)
	}
	cookie.HttpOnly = true
	cookie.Secure = c.Request().TLS != nil
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}
