package layouts

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/westernedge/portal/internal/view"
)

// Base wraps page content in the shared HTML shell: head, htmx runtime,
// flash message region, and the dark backdrop every screen sits on.
func Base(title string, flash view.FlashData, content gomponents.Node) gomponents.Node {
	return components.HTML5(components.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []gomponents.Node{
			h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/styles.css")),
		},
		Body: []gomponents.Node{
			h.Class("min-h-screen bg-slate-950 text-white antialiased"),
			flashRegion(flash),
			h.Main(
				h.Class("relative z-10 flex min-h-screen items-center justify-center p-4 sm:p-6"),
				content,
			),
		},
	})
}

// flashRegion renders the one-shot messages carried over from redirects.
func flashRegion(flash view.FlashData) gomponents.Node {
	if len(flash.Success) == 0 && len(flash.Error) == 0 {
		return nil
	}
	return h.Div(
		h.Class("fixed inset-x-0 top-0 z-20 space-y-2 p-4"),
		gomponents.Group(flashNodes(flash.Success, "rounded-lg bg-green-600/80 px-4 py-2 text-sm")),
		gomponents.Group(flashNodes(flash.Error, "rounded-lg bg-red-600/80 px-4 py-2 text-sm")),
	)
}

func flashNodes(messages []string, class string) []gomponents.Node {
	nodes := make([]gomponents.Node, 0, len(messages))
	for _, m := range messages {
		nodes = append(nodes, h.Div(h.Class(class), gomponents.Text(m)))
	}
	return nodes
}
