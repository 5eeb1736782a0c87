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
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Theme(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the invoicedesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - register       — create an account
//	  - theme          — toggle light/dark theme
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list | l       — list invoices (clears search and filters)
//	  - add            — create an invoice (interactive form)
//	  - edit [id]      — edit an invoice
//	  - delete [id]    — delete an invoice
//	  - search [term]  — filter by customer name, email or invoice number
//	  - filter k=v ... — filter by status= and range=
//	  - stats          — show the dashboard summary
//	  - theme          — toggle light/dark theme
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors through the notifier. This keeps the REPL loop resilient
// and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("invoicedesk [%s] > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, edit [id], delete [id], search [term], filter k=v, stats, theme, logout, exit")
			} else {
				printlnFn("Available commands: login, register, theme, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "filter":
			_ = a.Filter(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "theme":
			_ = a.Theme(ctx)

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
