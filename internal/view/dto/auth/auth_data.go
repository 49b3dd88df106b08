// Package auth holds the View Models (DTOs) for the authentication screens.
// Each form DTO carries the current field values plus the message state from
// the last submission, and derives the validity predicate that gates its
// submit button.
package auth

import "github.com/westernedge/portal/internal/validation"

// LoginData is the view model for the sign-in form.
type LoginData struct {
	Email    string
	Password string
	Remember bool
	Error    string
	Success  string
}

// Valid reports whether the form may be submitted.
func (d LoginData) Valid() bool {
	return validation.EmailLooksValid(d.Email) && validation.ValidLoginPassword(d.Password)
}

// RegisterData is the view model for the registration form.
type RegisterData struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	AgreedToTerms bool
	Error         string
	Success       string
}

// Strength returns the live password strength checks for the meter.
func (d RegisterData) Strength() validation.Strength {
	return validation.PasswordStrength(d.Password)
}

// Valid reports whether the form may be submitted: both names present,
// plausible email, strong password, and terms agreed.
func (d RegisterData) Valid() bool {
	return validation.NonEmpty(d.FirstName) &&
		validation.NonEmpty(d.LastName) &&
		validation.EmailLooksValid(d.Email) &&
		d.Strength().Strong() &&
		d.AgreedToTerms
}

// ForgotPasswordData is the view model for the password-reset request form.
type ForgotPasswordData struct {
	Email   string
	Error   string
	Success string
}

// Valid reports whether the form may be submitted. After a successful
// request the form is frozen until the user switches screens.
func (d ForgotPasswordData) Valid() bool {
	return validation.EmailLooksValid(d.Email) && d.Success == ""
}

// UpdatePasswordData is the view model for the choose-a-new-password form.
type UpdatePasswordData struct {
	Password     string
	ShowPassword bool
	Error        string
	Success      string
}

// Valid reports whether the form may be submitted. The form freezes once
// the success message is shown; the deferred redirect takes over from there.
func (d UpdatePasswordData) Valid() bool {
	return validation.ValidNewPassword(d.Password) && d.Success == ""
}

// DashboardData is the view model for the post-login dashboard.
type DashboardData struct {
	DisplayName string
	Email       string
	UserID      string
}
