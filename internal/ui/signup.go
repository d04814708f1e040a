package ui

import (
	"context"
	"errors"

	"github.com/valencire/account/internal/common"
)

// Signup runs the create-account flow: collect the form fields, check the
// confirmation locally, then hand off to the account store. On success the
// user is signed in immediately and lands on the dashboard.
func (a *App) Signup(ctx context.Context) error {
	firstName, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirmPassword, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if password != confirmPassword {
		printlnFn("Passwords do not match!")
		return common.ErrorValidation
	}

	record, err := a.accounts.Create(ctx, firstName, lastName, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorEmailExists):
			printlnFn("Email already registered!")
		case errors.Is(err, common.ErrorValidation):
			printlnFn(err.Error())
		default:
			a.logger.Error(ctx, "signup failed", "error", err)
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
