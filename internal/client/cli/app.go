package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/contactbook/internal/client/client"
	"github.com/dmitrijs2005/contactbook/internal/client/config"
	"github.com/dmitrijs2005/contactbook/internal/client/controller"
	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

type App struct {
	config *config.Config
	api    client.Client
	ctl    *controller.Controller
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	logCloser io.Closer

	focusMu      sync.Mutex
	focusPending bool
	initial      sync.WaitGroup
}

// NewApp builds the HTTP client and controller described by c. Stdin is used
// both for commands and for delete confirmations.
func NewApp(c *config.Config) (*App, error) {
	slogger, logCloser := logging.New(logging.Options{
		Level:    c.LogLevel,
		Format:   c.LogFormat,
		File:     c.LogFile,
		Fallback: os.DevNull,
	})
	logger := logging.NewSlogLogger(slogger)

	api, err := client.NewHTTPClient(c.BaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("contacts client: %w", err)
	}

	a := newApp(c, api, logger, os.Stdin, os.Stdout)
	a.logCloser = logCloser
	return a, nil
}

func newApp(c *config.Config, api client.Client, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		api:    api,
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.ctl = controller.New(api,
		controller.WithLogger(logger),
		controller.WithConfirmer(a.confirmer()),
		controller.WithObserver(a.onEvent),
	)
	return a
}

// Run loads the contact list in the background and blocks in the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.initial.Wait()
		a.ctl.Close()
		_ = a.api.Close()
		if a.logCloser != nil {
			_ = a.logCloser.Close()
		}
	}()

	printlnFn("Welcome to contactbook (type 'help' for commands)")
	a.startInitialLoad(ctx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(&lineReader{r: a.reader}))
}

func (a *App) startInitialLoad(ctx context.Context) {
	a.initial.Add(1)
	go func() {
		defer a.initial.Done()
		if err := a.ctl.Reload(ctx); err != nil {
			a.logger.Warn(ctx, "initial load failed", "err", err)
		}
	}()
}

// onEvent runs inside controller operations; it only records what the
// REPL should do once the command returns.
func (a *App) onEvent(k controller.EventKind) {
	if k != controller.EventFocusForm {
		return
	}
	a.focusMu.Lock()
	a.focusPending = true
	a.focusMu.Unlock()
}

func (a *App) takeFocus() bool {
	a.focusMu.Lock()
	defer a.focusMu.Unlock()
	f := a.focusPending
	a.focusPending = false
	return f
}

// getStatus renders the prompt annotation: mode, record count and flags.
func (a *App) getStatus() string {
	v := a.ctl.View()

	parts := []string{string(v.Mode)}
	if v.Mode == models.ModeEdit {
		parts[0] = "edit " + v.Draft.ID
	}
	switch {
	case v.Loading:
		parts = append(parts, "syncing")
	default:
		parts = append(parts, recordsBadge(v.Count()))
	}
	if v.Error != "" {
		parts = append(parts, "error")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
