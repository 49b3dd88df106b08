package pages

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/westernedge/portal/internal/view/dto/auth"
	"github.com/westernedge/portal/web/src/templates/components"
)

// ForgotPassword renders the full password-reset request card.
func ForgotPassword(data auth.ForgotPasswordData) gomponents.Node {
	return card(
		heading("Reset Password", "Enter your email to receive a reset link."),
		ForgotPasswordForm(data),
	)
}

// ForgotPasswordForm renders the reset-request form fragment. Once the
// confirmation message is shown the submit control stays disabled until the
// user switches back to another screen.
func ForgotPasswordForm(data auth.ForgotPasswordData) gomponents.Node {
	return Form(
		ID("forgot-form"),
		Class("space-y-4"),
		Method("post"),
		Action("/auth/forgot-password"),
		hx.Post("/auth/forgot-password"),
		hx.Target("#forgot-form"),
		hx.Swap("outerHTML"),

		components.ErrorRegion(data.Error),
		components.SuccessRegion(data.Success),

		components.TextField("email", "email", "Email", "email", data.Email, "you@domain.com"),

		components.SubmitButton("Send reset link", data.Valid()),

		P(
			Class("text-center text-xs text-white/55"),
			A(
				Href("/auth/switch/login"),
				Class("text-blue-300/90 hover:underline"),
				gomponents.Text("Back to sign in"),
			),
		),
	)
}
