package ui

import (
	"context"
	"errors"

	"github.com/valencire/account/internal/common"
)

// Signin runs the sign-in flow. The distinct not-found and bad-password
// messages match the original storefront; the store itself returns
// distinct sentinels, so collapsing them later is a front-end-only change.
func (a *App) Signin(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	record, err := a.accounts.Authenticate(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			printlnFn("Account not found. Please create an account.")
		case errors.Is(err, common.ErrorInvalidCredentials):
			printlnFn("Incorrect password!")
		default:
			a.logger.Error(ctx, "signin failed", "error", err)
			printlnFn("Something went wrong. Please try again.")
		}
		return err
	}

	if err := a.sessions.Begin(ctx, record.Email); err != nil {
		a.logger.Error(ctx, "session begin failed", "error", err)
		printlnFn("Something went wrong. Please try again.")
		return err
	}

	a.view = ViewDashboard
	return a.ShowDashboard(ctx)
}

// Logout records the logout event, ends the session and returns to the
// landing view. The activity write is best-effort: a storage hiccup there
// must not trap the user in a session.
func (a *App) Logout(ctx context.Context) error {
	if current := a.sessions.Current(); current != nil {
		if err := a.accounts.RecordLogout(ctx, current.Email); err != nil {
			a.logger.Warn(ctx, "logout activity not recorded", "error", err)
		}
	}

	if err := a.sessions.End(ctx); err != nil {
		a.logger.Error(ctx, "session end failed", "error", err)
		printlnFn("Something went wrong. Please try again.")
		return err
	}

	a.view = ViewLanding
	a.printLanding()
	return nil
}
