package session

import "github.com/Tanishkag23/xpense/internal/model"

// Policy holds the knobs that shape transitions.
type Policy struct {
	// DemoUser is the account name used for auto-login.
	DemoUser string
	// LogoutRevealsLogin skips the demo re-login after logout and lands on
	// Unauthenticated instead.
	LogoutRevealsLogin bool
}

// FromIdentity is the startup transition for an identity response.
// ok is false when the server reports no session and a demo login should
// be attempted.
func (p Policy) FromIdentity(id model.Identity) (State, bool) {
	if !id.LoggedIn || id.User == "" {
		return Guest(), false
	}
	return p.classify(id.User), true
}

// AfterDemoLogin is the transition after a best-effort demo login.
// A failed or errored attempt leaves the client unauthenticated.
func (p Policy) AfterDemoLogin(res model.LoginResult, err error) State {
	if err != nil || !res.OK {
		return Guest()
	}
	user := res.User
	if user == "" {
		user = p.DemoUser
	}
	return Demo(user)
}

// AfterLogin is the transition for an explicit login. A rejected login
// keeps the current state.
func (p Policy) AfterLogin(cur State, res model.LoginResult, username string) State {
	if !res.OK {
		return cur
	}
	user := res.User
	if user == "" {
		user = username
	}
	return User(user)
}

// classify decides whether a logged-in user is the demo account.
func (p Policy) classify(user string) State {
	if p.DemoUser != "" && user == p.DemoUser {
		return Demo(user)
	}
	return User(user)
}
