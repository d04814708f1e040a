package ui

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentView() View
	Signin(ctx context.Context) error
	Signup(ctx context.Context) error
	ShowDashboard(ctx context.Context) error
	AddSampleOrder(ctx context.Context) error
	AddAddress(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the account client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current view (from statusFn) and accepts commands:
//
//	Landing:
//	  - help           — show available commands
//	  - signin         — authenticate
//	  - signup         — create an account
//	  - exit | quit    — leave the program
//
//	Dashboard:
//	  - help           — show available commands
//	  - show           — re-render the dashboard
//	  - order          — place the sample order
//	  - addaddress     — add a shipping address
//	  - logout         — sign out, back to landing
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("valencire [%s] > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		onDashboard := a.currentView() == ViewDashboard

		switch cmd {
		case "help":
			if onDashboard {
				printlnFn("Available commands: show, order, addaddress, logout, exit")
			} else {
				printlnFn("Available commands: signin, signup, exit")
			}

		case "signin":
			if onDashboard {
				printlnFn("Already signed in. Use 'logout' first.")
				continue
			}
			_ = a.Signin(ctx)

		case "signup":
			if onDashboard {
				printlnFn("Already signed in. Use 'logout' first.")
				continue
			}
			_ = a.Signup(ctx)

		case "show":
			if !onDashboard {
				printlnFn("Sign in first.")
				continue
			}
			_ = a.ShowDashboard(ctx)

		case "order":
			if !onDashboard {
				printlnFn("Sign in first.")
				continue
			}
			_ = a.AddSampleOrder(ctx)

		case "addaddress":
			if !onDashboard {
				printlnFn("Sign in first.")
				continue
			}
			_ = a.AddAddress(ctx)

		case "logout":
			if !onDashboard {
				printlnFn("Sign in first.")
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
