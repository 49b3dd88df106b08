// Package pages holds the gomponents page and fragment components for the
// authentication screens.
package pages

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/westernedge/portal/internal/view/dto/auth"
	"github.com/westernedge/portal/web/src/templates/components"
)

// Login renders the full sign-in card.
func Login(data auth.LoginData) gomponents.Node {
	return card(
		heading("Welcome", "Sign in to continue your access."),
		LoginForm(data),
	)
}

// LoginForm renders just the sign-in form. It is also returned on its own
// as the htmx fragment after a submission.
func LoginForm(data auth.LoginData) gomponents.Node {
	return Form(
		ID("login-form"),
		Class("space-y-4"),
		Method("post"),
		Action("/auth/login"),
		hx.Post("/auth/login"),
		hx.Target("#login-form"),
		hx.Swap("outerHTML"),

		components.ErrorRegion(data.Error),
		components.SuccessRegion(data.Success),

		components.TextField("email", "email", "Email", "email", data.Email, "you@domain.com"),
		components.PasswordField("password", "password", "Password", data.Password, false),

		Div(
			Class("flex items-center justify-between pt-1"),
			components.CheckboxField("remember", "Remember me", data.Remember),
			A(
				Href("/auth/switch/forgot"),
				Class("text-xs text-blue-300/80 hover:underline"),
				gomponents.Text("Forgot?"),
			),
		),

		components.SubmitButton("Sign in", data.Valid()),

		P(
			Class("text-center text-xs text-white/55"),
			gomponents.Text("New here? "),
			A(
				Href("/auth/switch/register"),
				Class("text-blue-300/90 hover:underline"),
				gomponents.Text("Create an account"),
			),
		),
	)
}
