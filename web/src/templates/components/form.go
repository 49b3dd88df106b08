// Package components holds the shared form building blocks used by every
// authentication screen.
package components

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/westernedge/portal/internal/validation"
)

// TextField renders a labeled input row.
func TextField(id, name, label, inputType, value, placeholder string) gomponents.Node {
	return Div(
		Class("space-y-2"),
		Label(For(id), Class("block text-sm text-white/80"), gomponents.Text(label)),
		Input(
			ID(id),
			Name(name),
			Type(inputType),
			Value(value),
			Placeholder(placeholder),
			Class("w-full rounded-xl border border-white/10 bg-white/5 px-3 py-2.5 text-sm"),
		),
	)
}

// PasswordField renders a password input that honors the show/hide toggle.
func PasswordField(id, name, label, value string, show bool) gomponents.Node {
	inputType := "password"
	if show {
		inputType = "text"
	}
	return Div(
		Class("space-y-2"),
		Label(For(id), Class("block text-sm text-white/80"), gomponents.Text(label)),
		Div(
			Class("flex items-center gap-2"),
			Input(
				ID(id),
				Name(name),
				Type(inputType),
				Value(value),
				Placeholder("••••••••"),
				Class("w-full rounded-xl border border-white/10 bg-white/5 px-3 py-2.5 text-sm"),
			),
			Label(
				Class("inline-flex cursor-pointer items-center gap-1 text-xs text-white/70"),
				Input(Type("checkbox"), Name("show_password"), Value("1"), gomponents.If(show, Checked())),
				gomponents.Text("Show"),
			),
		),
	)
}

// CheckboxField renders a labeled checkbox row.
func CheckboxField(name, label string, checked bool) gomponents.Node {
	return Label(
		Class("inline-flex cursor-pointer select-none items-center gap-2 text-sm text-white/80"),
		Input(Type("checkbox"), Name(name), Value("1"), gomponents.If(checked, Checked())),
		gomponents.Text(label),
	)
}

// SubmitButton renders the form's submit control. The disabled state must
// always match the form's validity predicate.
func SubmitButton(label string, enabled bool) gomponents.Node {
	return Button(
		Type("submit"),
		gomponents.If(!enabled, Disabled()),
		gomponents.Attr("hx-disabled-elt", "this"),
		Class("inline-flex w-full items-center justify-center rounded-xl bg-blue-600 px-4 py-2.5 text-sm font-medium disabled:cursor-not-allowed disabled:opacity-60"),
		gomponents.Text(label),
	)
}

// ErrorRegion renders the dedicated provider-failure message area. The
// message text is shown verbatim.
func ErrorRegion(message string) gomponents.Node {
	if message == "" {
		return nil
	}
	return Div(
		Class("rounded-lg border border-red-400/30 bg-red-500/10 px-3 py-2 text-sm text-red-300"),
		Role("alert"),
		gomponents.Text(message),
	)
}

// SuccessRegion renders the dedicated success message area.
func SuccessRegion(message string) gomponents.Node {
	if message == "" {
		return nil
	}
	return Div(
		Class("rounded-lg border border-green-400/30 bg-green-500/10 px-3 py-2 text-sm text-green-300"),
		Role("status"),
		gomponents.Text(message),
	)
}

// StrengthMeter renders the three independent password strength rows.
func StrengthMeter(st validation.Strength) gomponents.Node {
	return Div(
		Class("space-y-1"),
		strengthRow(st.MinLength, "More than 8 characters"),
		strengthRow(st.HasNumber, "Contains a number"),
		strengthRow(st.HasSpecial, "Contains a special character"),
	)
}

func strengthRow(met bool, label string) gomponents.Node {
	dot := "h-1.5 w-1.5 rounded-full bg-white/20"
	text := "text-xs text-white/60"
	if met {
		dot = "h-1.5 w-1.5 rounded-full bg-green-400"
		text = "text-xs text-green-400/90"
	}
	return Div(
		Class("flex items-center gap-2"),
		Div(Class(dot)),
		Span(Class(text), gomponents.Text(label)),
	)
}
