package pages

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/westernedge/portal/internal/view/dto/auth"
)

// Dashboard renders the post-login landing page.
func Dashboard(data auth.DashboardData) gomponents.Node {
	return Div(
		Class("w-full max-w-md rounded-lg border border-white/10 bg-black/30 p-8 text-center shadow-xl"),
		H1(
			Class("mb-4 text-3xl font-semibold"),
			gomponents.Text("Welcome, "+data.DisplayName),
		),
		P(Class("mb-2 text-white/70"), gomponents.Text("You are successfully logged in.")),
		P(Class("mb-6 text-sm text-white/50"), gomponents.Text("User ID: "+data.UserID)),
		LogoutButton(),
	)
}

// LogoutButton renders the sign-out control. htmx disables the button while
// the request is in flight so a double click cannot sign out twice.
func LogoutButton() gomponents.Node {
	return Form(
		Method("post"),
		Action("/auth/logout"),
		hx.Post("/auth/logout"),
		Button(
			Type("submit"),
			gomponents.Attr("hx-disabled-elt", "this"),
			Class("inline-flex items-center justify-center rounded-xl bg-red-600/50 px-4 py-2.5 text-sm font-medium hover:bg-red-600/70 disabled:cursor-not-allowed disabled:opacity-60"),
			gomponents.Text("Sign Out"),
		),
	)
}
