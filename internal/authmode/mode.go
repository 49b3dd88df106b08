// Package authmode models the unauthenticated entry page as an explicit
// state machine. The page shows exactly one of three screens at a time;
// every screen change goes through Transition so an invalid mode can never
// be rendered.
package authmode

import "fmt"

// Mode identifies which authentication screen is currently displayed.
type Mode int

const (
	// Login is the initial mode for every new visitor.
	Login Mode = iota
	Register
	Forgot
)

// String returns the stable wire name of the mode, used in switch URLs and
// the session value.
func (m Mode) String() string {
	switch m {
	case Register:
		return "register"
	case Forgot:
		return "forgot"
	default:
		return "login"
	}
}

// Parse converts a wire name back into a Mode.
func Parse(s string) (Mode, error) {
	switch s {
	case "login":
		return Login, nil
	case "register":
		return Register, nil
	case "forgot":
		return Forgot, nil
	default:
		return Login, fmt.Errorf("unknown auth mode %q", s)
	}
}

// Transition validates a requested screen change and returns the new mode.
// The legal edges mirror the links the screens expose: any screen can move
// to the registration form or back to sign-in, but the forgot-password
// screen is reachable only from the login form. Any other request is
// rejected and the current mode is returned unchanged.
func Transition(from, to Mode) (Mode, error) {
	if from == to {
		return from, nil
	}
	switch to {
	case Login, Register:
		return to, nil
	case Forgot:
		if from == Login {
			return Forgot, nil
		}
	}
	return from, fmt.Errorf("no transition from %s to %s", from, to)
}
