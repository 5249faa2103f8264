// Package session models which identity the client is displaying.
//
// The state is a small tagged variant. Transitions are pure functions of
// server responses; Project turns a state into what the screen shows.
package session

import "fmt"

// Kind tags the variant held by a State.
type Kind int

const (
	// Unauthenticated: no session, login panel visible.
	Unauthenticated Kind = iota
	// AutoDemo: logged in automatically as the demo account, panel visible.
	AutoDemo
	// Authenticated: a real user is logged in, panel hidden.
	Authenticated
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case AutoDemo:
		return "auto-demo"
	case Authenticated:
		return "authenticated"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State is the displayed identity. User is empty for Unauthenticated.
type State struct {
	Kind Kind
	User string
}

// Guest is the unauthenticated state.
func Guest() State { return State{Kind: Unauthenticated} }

// Demo is the auto-demo state for the given (demo) user name.
func Demo(user string) State { return State{Kind: AutoDemo, User: user} }

// User is the authenticated state for a real account.
func User(name string) State { return State{Kind: Authenticated, User: name} }

func (s State) String() string {
	if s.User == "" {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.User)
}

// Presentation is what the screen shows for a state.
type Presentation struct {
	Greeting     string
	PanelVisible bool
}

// Project maps a state to its presentation. Each variant has exactly one
// projection; panel visibility is decided here and nowhere else.
func Project(s State) Presentation {
	switch s.Kind {
	case Authenticated:
		return Presentation{Greeting: "Hi, " + s.User, PanelVisible: false}
	case AutoDemo:
		return Presentation{Greeting: "Hi, " + s.User, PanelVisible: true}
	default:
		return Presentation{Greeting: "Hi, Guest", PanelVisible: true}
	}
}
