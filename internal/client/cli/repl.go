package cli

import (
	"bufio"
	"context"
	"fmt"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	New(ctx context.Context) error
	Set(ctx context.Context, field, value string) error
	Edit(ctx context.Context, id string) error
	Cancel(ctx context.Context) error
	Form(ctx context.Context) error
	Save(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	Status(ctx context.Context) error
}

const helpText = "Available commands: (l)ist, (r)efresh, new, set <field> <value>, edit <id>, cancel, form, save, delete <id>, status, exit"

// runREPL starts a simple read–eval–print loop for the contactbook CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user and the log themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cb %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		cmd, rest := splitCommand(scanner.Text())
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "r", "refresh":
			_ = a.Refresh(ctx)

		case "new":
			_ = a.New(ctx)

		case "set":
			field, value := splitCommand(rest)
			if field == "" {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			_ = a.Set(ctx, field, value)

		case "edit":
			if rest == "" {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, rest)

		case "cancel":
			_ = a.Cancel(ctx)

		case "form":
			_ = a.Form(ctx)

		case "save", "submit":
			_ = a.Save(ctx)

		case "delete", "rm":
			if rest == "" {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, rest)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
