package pages

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/westernedge/portal/internal/view/dto/auth"
	"github.com/westernedge/portal/web/src/templates/components"
)

// Register renders the full registration card.
func Register(data auth.RegisterData) gomponents.Node {
	return card(
		heading("Create your account", "A confirmation link will be emailed to you."),
		RegisterForm(data),
	)
}

// RegisterForm renders the registration form fragment. Any input re-renders
// the fragment through the check endpoint so the strength meter and the
// submit button's disabled state track the current field values.
func RegisterForm(data auth.RegisterData) gomponents.Node {
	return Form(
		ID("register-form"),
		Class("space-y-4"),
		Method("post"),
		Action("/auth/register"),
		hx.Post("/auth/register"),
		hx.Target("#register-form"),
		hx.Swap("outerHTML"),

		components.ErrorRegion(data.Error),
		components.SuccessRegion(data.Success),

		Div(
			Class("grid grid-cols-2 gap-3"),
			components.TextField("first_name", "first_name", "First name", "text", data.FirstName, "John"),
			components.TextField("last_name", "last_name", "Last name", "text", data.LastName, "Doe"),
		),
		components.TextField("email", "email", "Email", "email", data.Email, "you@domain.com"),

		Div(
			hx.Post("/auth/register/check"),
			hx.Target("#register-form"),
			hx.Swap("outerHTML"),
			gomponents.Attr("hx-include", "#register-form"),
			gomponents.Attr("hx-trigger", "input delay:300ms from:#register-form"),
			Class("space-y-2"),
			components.PasswordField("password", "password", "Password", data.Password, false),
			components.StrengthMeter(data.Strength()),
		),

		components.CheckboxField("agreed_to_terms", "I agree to the Terms of Service", data.AgreedToTerms),

		components.SubmitButton("Create account", data.Valid()),

		P(
			Class("text-center text-xs text-white/55"),
			gomponents.Text("Already have an account? "),
			A(
				Href("/auth/switch/login"),
				Class("text-blue-300/90 hover:underline"),
				gomponents.Text("Back to sign in"),
			),
		),
	)
}
