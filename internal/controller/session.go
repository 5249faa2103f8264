package controller

import (
	"context"

	"github.com/Tanishkag23/xpense/internal/api"
	"github.com/Tanishkag23/xpense/internal/model"
	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/session"
)

// Startup resolves the session and then renders every view once.
//
// An identity answer that cannot be read counts as "not logged in" and
// leads to the demo login. Only a transport failure skips it. Failures while
// asking who is logged in, or during the demo login, are logged and
// otherwise ignored. Errors from the refresh are returned.
func (c *Controller) Startup(ctx context.Context) error {
	id, err := c.api.Me(ctx)
	switch {
	case err == nil:
	case api.IsBodyError(err):
		c.log.Debug().Err(err).Msg("unreadable identity, treating as logged out")
		id = model.Identity{}
	default:
		c.log.Debug().Err(err).Msg("identity check failed, staying guest")
		c.setState(session.Guest())
		return c.RefreshAll(ctx)
	}

	st, known := c.policy.FromIdentity(id)
	if !known {
		st = c.demoLogin(ctx)
	}
	c.setState(st)
	return c.RefreshAll(ctx)
}

// demoLogin makes one best-effort login with the demo account.
func (c *Controller) demoLogin(ctx context.Context) session.State {
	res, err := c.api.Login(ctx, model.Credentials{
		Username: c.policy.DemoUser,
		Password: c.demoPass,
	})
	if err != nil {
		c.log.Debug().Err(err).Msg("demo login failed")
	}
	return c.policy.AfterDemoLogin(res, err)
}

func (c *Controller) credentials() model.Credentials {
	return model.Credentials{
		Username: c.scr.Input(screen.LoginUser),
		Password: c.scr.Input(screen.LoginPass),
	}
}

// Login submits the credentials typed into the login panel. On success the
// panel is hidden and every view is refreshed.
func (c *Controller) Login(ctx context.Context) error {
	creds := c.credentials()
	res, err := c.api.Login(ctx, creds)
	if err != nil {
		return c.transportFailure("login", err)
	}
	if !res.OK {
		return c.rejected("login", msgLoginFailed)
	}

	c.setState(c.policy.AfterLogin(c.State(), res, creds.Username))
	c.scr.ClearInputs(screen.LoginPass)
	return c.RefreshAll(ctx)
}

// Signup registers the credentials typed into the login panel. It never
// changes the session.
func (c *Controller) Signup(ctx context.Context) error {
	res, err := c.api.Signup(ctx, c.credentials())
	if err != nil {
		return c.transportFailure("signup", err)
	}
	if !res.OK {
		return c.rejected("signup", msgSignupFailed)
	}
	c.scr.Alert(msgSignupOK)
	return nil
}

// Logout asks the server to end the session, ignoring any failure, then
// either falls back to the demo account or shows the login panel as a
// guest, depending on the policy. Every view is refreshed afterwards.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.api.Logout(ctx); err != nil {
		c.log.Debug().Err(err).Msg("logout request failed")
	}

	st := session.Guest()
	if !c.policy.LogoutRevealsLogin {
		st = c.demoLogin(ctx)
	}
	c.setState(st)
	return c.RefreshAll(ctx)
}
