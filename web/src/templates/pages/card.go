package pages

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// card is the shared glass-panel wrapper every auth screen sits in.
func card(children ...gomponents.Node) gomponents.Node {
	return Div(
		Class("relative z-10 w-full max-w-md"),
		Div(
			Class("rounded-2xl border border-white/10 bg-white/[0.08] p-6 shadow-2xl ring-1 ring-white/20 sm:p-8"),
			gomponents.Group(children),
		),
	)
}

// heading renders the brand row and screen title shared by the auth cards.
func heading(title, subtitle string) gomponents.Node {
	return Div(
		Class("mb-6"),
		Div(
			Class("mb-6 flex items-center gap-3"),
			Div(
				Class("grid h-10 w-10 place-items-center rounded-xl border border-white/15 bg-stone-400/20"),
				Span(Class("text-lg"), gomponents.Text("▣")),
			),
			Div(Class("text-[22px] font-semibold tracking-tight"), gomponents.Text("Western Edge Gutters")),
		),
		H1(Class("text-[26px] font-semibold tracking-tight"), gomponents.Text(title)),
		P(Class("mt-1.5 text-sm text-white/60"), gomponents.Text(subtitle)),
	)
}
