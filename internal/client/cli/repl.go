package cli

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
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	SetNewPassword(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
	Question(ctx context.Context) error
	Performance(ctx context.Context) error
	History(ctx context.Context) error
	Plans(ctx context.Context) error
	CancelSubscription(ctx context.Context) error
	CheckoutReturn(ctx context.Context, sessionID string) error
	Logout(ctx context.Context) error
}

// runREPL starts a read–eval–print loop over the practice client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Which commands are offered depends on whether a valid session exists;
// the check is repeated on every dispatch, so an expired token downgrades
// the command set without a restart and authenticated commands answer with
// a login hint instead of running.
//
//	Not logged in:
//	  - help            — show available commands
//	  - register        — create an account (free or premium)
//	  - login           — authenticate
//	  - reset-password  — request a password reset email
//	  - set-password    — set a new password using a reset token
//	  - verify          — confirm an email verification code
//	  - plans           — show available plans
//	  - checkout <id>   — check the result of a checkout session
//	  - exit | quit     — leave the program
//
//	Logged in:
//	  - help            — show available commands
//	  - (q)uestion      — practice exam questions
//	  - (p)erformance   — answer statistics dashboard
//	  - history         — the full answer history, including this session
//	  - plans           — current plan and upgrade
//	  - cancel          — cancel the premium subscription
//	  - checkout <id>   — check the result of a checkout session
//	  - logout          — log out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cp> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (q)uestion, (p)erformance, history, plans, cancel, checkout <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, reset-password, set-password, verify, plans, checkout <id>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "reset-password":
			_ = a.ResetPassword(ctx)

		case "set-password":
			_ = a.SetNewPassword(ctx)

		case "verify":
			_ = a.VerifyEmail(ctx)

		case "q", "question":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			_ = a.Question(ctx)

		case "p", "performance":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			_ = a.Performance(ctx)

		case "history":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			_ = a.History(ctx)

		case "plans":
			_ = a.Plans(ctx)

		case "cancel":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			_ = a.CancelSubscription(ctx)

		case "checkout":
			if len(parts) < 2 {
				printlnFn("Usage: checkout <session-id>")
				continue
			}
			_ = a.CheckoutReturn(ctx, parts[1])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
