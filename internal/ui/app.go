// Package ui implements the terminal surface of the storefront account
// demo: the landing / signin / signup / dashboard view state machine over
// the account store and session manager.
package ui

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/valencire/account/internal/account"
	"github.com/valencire/account/internal/logging"
	"github.com/valencire/account/internal/session"
)

// View names the screen the user is on. The dashboard is reachable only
// while a resolved session and a matching user record both exist.
type View string

const (
	ViewLanding   View = "landing"
	ViewDashboard View = "dashboard"
)

type App struct {
	accounts *account.Store
	sessions *session.Manager
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	view     View
}

func NewApp(accounts *account.Store, sessions *session.Manager, logger logging.Logger) *App {
	return &App{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		view:     ViewLanding,
	}
}

func (a *App) currentView() View {
	return a.view
}

// Run resolves any persisted session and starts the command loop. A stale
// or absent session lands on the landing view.
func (a *App) Run(ctx context.Context) error {
	record, err := a.sessions.Resume(ctx)
	if err != nil {
		return err
	}

	if record != nil {
		a.view = ViewDashboard
		a.logger.Info(ctx, "session resumed", "email", record.Email)
		_ = a.ShowDashboard(ctx)
	} else {
		a.printLanding()
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return string(a.view) }, scanner)
	return nil
}

func (a *App) printLanding() {
	printlnFn("VALENCIRÈ®")
	printlnFn("CRAFTED FOR THE EXTRAORDINARY")
	printlnFn("Commands: signin, signup, exit")
}
