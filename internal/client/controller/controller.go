package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/client"
	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/client/store"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// SuccessMessageTTL is how long a success message stays visible.
const SuccessMessageTTL = 3000 * time.Millisecond

// DeletePrompt is the question passed to the Confirmer before a delete.
const DeletePrompt = "Are you sure you want to delete this contact?"

// Confirmer asks the user a yes/no question.
type Confirmer func(ctx context.Context, prompt string) bool

// DenyAll declines every confirmation.
func DenyAll(context.Context, string) bool { return false }

// EventKind tells an Observer what changed.
type EventKind int

const (
	// EventChanged means the View changed.
	EventChanged EventKind = iota
	// EventFocusForm asks the presentation layer to bring the form into view.
	EventFocusForm
)

type Observer func(EventKind)

// timer is the part of *time.Timer the controller uses.
type timer interface {
	Stop() bool
}

// afterFunc schedules expiry of success messages. Replaced in tests.
var afterFunc = func(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}

type Option func(*Controller)

func WithConfirmer(c Confirmer) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.confirm = c
		}
	}
}

func WithObserver(o Observer) Option {
	return func(ctl *Controller) {
		ctl.observer = o
	}
}

func WithLogger(l logging.Logger) Option {
	return func(ctl *Controller) {
		if l != nil {
			ctl.logger = l
		}
	}
}

type Controller struct {
	api      client.Client
	store    *store.Store
	logger   logging.Logger
	confirm  Confirmer
	observer Observer

	mu           sync.Mutex
	draft        models.Draft
	saving       bool
	errKind      ErrorKind
	success      string
	successGen   uint64
	successTimer timer
}

func New(api client.Client, opts ...Option) *Controller {
	c := &Controller{
		api:     api,
		logger:  logging.Discard(),
		confirm: DenyAll,
		draft:   models.EmptyDraft(),
	}
	for _, o := range opts {
		o(c)
	}
	c.store = store.New(api, c.logger)
	c.logger = c.logger.With("module", "controller")
	return c
}

// Store exposes the contact list backing the controller.
func (c *Controller) Store() *store.Store {
	return c.store
}

// UpdateField sets one draft field. It never touches the network.
func (c *Controller) UpdateField(name, value string) error {
	f, err := models.ParseField(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	d, err := c.draft.With(f, value)
	if err == nil {
		c.draft = d
	}
	c.mu.Unlock()

	if err != nil {
		return err
	}
	c.notify(EventChanged)
	return nil
}

// BeginEdit loads contact into the form and switches to edit mode.
func (c *Controller) BeginEdit(contact models.Contact) {
	c.mu.Lock()
	c.draft = models.DraftFrom(contact)
	c.errKind = ErrorKindNone
	c.mu.Unlock()

	c.notify(EventChanged)
	c.notify(EventFocusForm)
}

// BeginEditByID edits the contact with id from the last loaded list.
func (c *Controller) BeginEditByID(id string) error {
	contact, ok := c.store.Find(id)
	if !ok {
		return ErrNotLoaded
	}
	c.BeginEdit(contact)
	return nil
}

// CancelEdit discards the draft. It does nothing in create mode.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	if !c.draft.IsEditing() {
		c.mu.Unlock()
		return
	}
	c.draft = models.EmptyDraft()
	c.errKind = ErrorKindNone
	c.mu.Unlock()

	c.notify(EventChanged)
}

// Submit creates or updates the contact in the draft depending on the mode.
// On success the draft is reset and the list reloaded; on failure the draft
// is kept for a retry.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return ErrSaveInProgress
	}
	draft := c.draft
	if err := draft.Validate(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.saving = true
	c.errKind = ErrorKindNone
	c.mu.Unlock()
	c.notify(EventChanged)

	defer func() {
		c.mu.Lock()
		c.saving = false
		c.mu.Unlock()
		c.notify(EventChanged)
	}()

	var (
		err error
		msg string
		op  string
	)
	if draft.IsEditing() {
		op, msg = "update", MsgContactUpdated
		_, err = c.api.Update(ctx, draft.ID, draft.Payload())
	} else {
		op, msg = "create", MsgContactAdded
		_, err = c.api.Create(ctx, draft.Payload())
	}
	if err != nil {
		c.logger.Error(ctx, "save contact failed", "op", op, "id", draft.ID, "err", err)
		c.setError(SaveFailed)
		return &OpError{Kind: SaveFailed, Err: err}
	}
	c.logger.Info(ctx, "contact saved", "op", op, "id", draft.ID)

	c.mu.Lock()
	c.draft = models.EmptyDraft()
	c.mu.Unlock()
	c.showSuccess(msg)

	// A failed reload is recorded in the status; the save itself succeeded.
	_ = c.Reload(ctx)
	return nil
}

// Delete removes the contact with id after the Confirmer agrees. A declined
// confirmation returns ErrDeclined and changes nothing.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if !c.confirm(ctx, DeletePrompt) {
		return ErrDeclined
	}

	c.setError(ErrorKindNone)

	if err := c.api.Delete(ctx, id); err != nil {
		c.logger.Error(ctx, "delete contact failed", "op", "delete", "id", id, "err", err)
		c.setError(DeleteFailed)
		return &OpError{Kind: DeleteFailed, Err: err}
	}
	c.logger.Info(ctx, "contact deleted", "id", id)

	c.showSuccess(MsgContactDeleted)
	_ = c.Reload(ctx)
	return nil
}

// Reload refetches the whole list. A result overtaken by a newer reload is
// silently dropped.
func (c *Controller) Reload(ctx context.Context) error {
	c.setError(ErrorKindNone)

	err := c.store.Reload(ctx)
	switch {
	case err == nil:
		// Also covers an older list applied after a newer reload failed.
		c.setError(ErrorKindNone)
		c.notify(EventChanged)
		return nil
	case errors.Is(err, store.ErrStale):
		c.notify(EventChanged)
		return nil
	default:
		c.logger.Error(ctx, "reload contacts failed", "op", "list", "err", err)
		c.setError(FetchFailed)
		return &OpError{Kind: FetchFailed, Err: err}
	}
}

// View returns a snapshot of the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	v := View{
		Draft: c.draft,
		Mode:  c.draft.Mode(),
		Status: Status{
			Saving:    c.saving,
			ErrorKind: c.errKind,
			Error:     c.errKind.Message(),
			Success:   c.success,
		},
	}
	c.mu.Unlock()

	v.Contacts = c.store.Snapshot()
	v.Loading = c.store.Loading()
	return v
}

// Close stops the pending success timer, if any.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.successTimer != nil {
		c.successTimer.Stop()
		c.successTimer = nil
	}
}

func (c *Controller) setError(k ErrorKind) {
	c.mu.Lock()
	changed := c.errKind != k
	c.errKind = k
	c.mu.Unlock()
	if changed {
		c.notify(EventChanged)
	}
}

func (c *Controller) showSuccess(msg string) {
	c.mu.Lock()
	c.successGen++
	gen := c.successGen
	c.success = msg
	if c.successTimer != nil {
		c.successTimer.Stop()
	}
	c.successTimer = afterFunc(SuccessMessageTTL, func() { c.expireSuccess(gen) })
	c.mu.Unlock()

	c.notify(EventChanged)
}

// expireSuccess clears the message only if it is still the one scheduled
// under gen.
func (c *Controller) expireSuccess(gen uint64) {
	c.mu.Lock()
	if gen != c.successGen {
		c.mu.Unlock()
		return
	}
	c.success = ""
	c.successTimer = nil
	c.mu.Unlock()

	c.notify(EventChanged)
}

func (c *Controller) notify(k EventKind) {
	if c.observer != nil {
		c.observer(k)
	}
}
