package pages

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/westernedge/portal/internal/view/dto/auth"
	"github.com/westernedge/portal/web/src/templates/components"
)

// UpdatePassword renders the full choose-a-new-password card. This screen
// is reached from the reset email link, outside the auth container.
func UpdatePassword(data auth.UpdatePasswordData) gomponents.Node {
	return card(
		heading("Choose a New Password", "Enter your new password below."),
		UpdatePasswordForm(data),
	)
}

// UpdatePasswordForm renders the update form fragment. On success the
// fragment carries a deferred redirect element: it fires two seconds after
// it lands, and is canceled implicitly if the element is swapped away first.
func UpdatePasswordForm(data auth.UpdatePasswordData) gomponents.Node {
	return Form(
		ID("update-password-form"),
		Class("space-y-4"),
		Method("post"),
		Action("/update-password"),
		hx.Post("/update-password"),
		hx.Target("#update-password-form"),
		hx.Swap("outerHTML"),

		components.ErrorRegion(data.Error),
		components.SuccessRegion(data.Success),

		gomponents.If(data.Success != "", deferredRedirect()),

		components.PasswordField("password", "password", "New Password", data.Password, data.ShowPassword),

		components.SubmitButton("Update password", data.Valid()),
	)
}

// deferredRedirect navigates to the entry route after a fixed delay. The
// redirect dies with the element, so replacing the fragment cancels it.
func deferredRedirect() gomponents.Node {
	return Div(
		hx.Get("/"),
		hx.Target("body"),
		hx.Swap("outerHTML"),
		gomponents.Attr("hx-trigger", "load delay:2s"),
		gomponents.Attr("hx-push-url", "true"),
	)
}
