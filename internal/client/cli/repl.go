package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	Profile(ctx context.Context) error
	Professions(ctx context.Context) error
	Social(ctx context.Context, provider string) error
	Verify(ctx context.Context) error
	ResendVerification(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	List(ctx context.Context, kind string, force bool) error
	Add(ctx context.Context, kind string) error
	Edit(ctx context.Context, kind string) error
	Delete(ctx context.Context, kind string) error
	Toggle(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Ourganize CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - social <p>       — print the OAuth redirect URL for google or github
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - whoami           — show the current user
//	  - refresh          — refetch the identity from the server
//	  - profile          — update name, email and profession
//	  - professions      — list the available professions
//	  - list <kind>      — list a collection (add -f to bypass the cache)
//	  - add <kind>       — create a record
//	  - edit <kind>      — update a record
//	  - del <kind>       — delete a record
//	  - toggle           — enable or disable a feature module
//	  - verify           — submit a signed verification link
//	  - resend           — resend the verification email
//	  - delete-account   — delete the account and all local data
//	  - logout           — log out and wipe local data
//	  - exit | quit      — leave the program
//
// Kinds: educations, experiences, skills, socials, modules, orgs,
// workspaces, projects, details.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ourganize %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, refresh, profile, professions, list <kind>, add <kind>, edit <kind>, del <kind>, toggle, verify, resend, delete-account, logout, exit")
				printlnFn("Kinds: educations, experiences, skills, socials, modules, orgs, workspaces, projects, details")
			} else {
				printlnFn("Available commands: register, login, social <google|github>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "professions":
			_ = a.Professions(ctx)

		case "social":
			if len(args) == 0 {
				printlnFn("Usage: social <google|github>")
				continue
			}
			_ = a.Social(ctx, args[0])

		case "verify":
			_ = a.Verify(ctx)

		case "resend":
			_ = a.ResendVerification(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "l", "list":
			if len(args) == 0 {
				printlnFn("Usage: list <kind> [-f]")
				continue
			}
			force := len(args) > 1 && args[1] == "-f"
			_ = a.List(ctx, args[0], force)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <kind>")
				continue
			}
			_ = a.Add(ctx, args[0])

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <kind>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "del", "delete":
			if len(args) == 0 {
				printlnFn("Usage: del <kind>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "toggle":
			_ = a.Toggle(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Root prints the greeting and runs the REPL against os.Stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Ourganize CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
