package cli

import (
	"context"
	"os"
	"strings"

	"github.com/dmitrijs2005/contactbook/internal/client/controller"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// confirmer asks on stdin. With -y every question is answered yes; without a
// terminal it answers no, so piped input can never delete by accident.
func (a *App) confirmer() controller.Confirmer {
	return func(ctx context.Context, prompt string) bool {
		if a.config.AssumeYes {
			return true
		}
		if !isTerminal(int(os.Stdin.Fd())) {
			printlnFn("Confirmation needs an interactive terminal; rerun with -y to skip it.")
			return false
		}
		answer, err := GetSimpleText(a.reader, prompt+" [y/N]", a.out)
		if err != nil {
			a.logger.Debug(ctx, "confirmation aborted", "err", err)
			return false
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}
