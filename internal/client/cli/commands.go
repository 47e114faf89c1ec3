package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactbook/internal/client/controller"
	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	a.renderList(a.ctl.View())
	return nil
}

// Refresh reloads the list unless a load is already running.
func (a *App) Refresh(ctx context.Context) error {
	if a.ctl.View().Loading {
		printlnFn("Syncing...")
		return nil
	}
	if err := a.ctl.Reload(ctx); err != nil {
		a.reportError(err)
		return err
	}
	a.renderList(a.ctl.View())
	return nil
}

func (a *App) New(ctx context.Context) error {
	a.ctl.CancelEdit()
	printlnFn(renderForm(a.ctl.View()))
	return nil
}

func (a *App) Set(ctx context.Context, field, value string) error {
	if err := a.ctl.UpdateField(field, value); err != nil {
		printlnFn("Unknown field:", field, "(use name, surname, phone or email)")
		return err
	}
	return nil
}

func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.ctl.BeginEditByID(id); err != nil {
		printlnFn("No contact with id", id, "in the list; try refresh.")
		return err
	}
	if a.takeFocus() {
		printlnFn(renderForm(a.ctl.View()))
	}
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	if a.ctl.View().Mode != models.ModeEdit {
		printlnFn("Nothing to cancel.")
		return nil
	}
	a.ctl.CancelEdit()
	printlnFn("Edit cancelled.")
	return nil
}

func (a *App) Form(ctx context.Context) error {
	printlnFn(renderForm(a.ctl.View()))
	return nil
}

func (a *App) Save(ctx context.Context) error {
	err := a.ctl.Submit(ctx)

	var verr *models.ValidationError
	switch {
	case errors.Is(err, controller.ErrSaveInProgress):
		printlnFn("Save already in progress.")
	case errors.As(err, &verr):
		printlnFn("Please fix the form:")
		for _, is := range verr.Issues {
			printlnFn(fmt.Sprintf("  %s %s", is.Field.Label(), is.Message))
		}
	case err != nil:
		a.reportError(err)
	default:
		a.reportOutcome()
	}
	return err
}

func (a *App) Delete(ctx context.Context, id string) error {
	err := a.ctl.Delete(ctx, id)
	switch {
	case errors.Is(err, controller.ErrDeclined):
		printlnFn("Cancelled.")
	case err != nil:
		a.reportError(err)
	default:
		a.reportOutcome()
	}
	return err
}

func (a *App) Status(ctx context.Context) error {
	v := a.ctl.View()
	printlnFn(fmt.Sprintf("mode: %s, %s, loading: %t, saving: %t", v.Mode, recordsBadge(v.Count()), v.Loading, v.Saving))
	if v.Error != "" {
		printlnFn("error:", v.Error)
	}
	if v.Success != "" {
		printlnFn("success:", v.Success)
	}
	return nil
}

// reportOutcome prints the success message of a finished mutation and the
// reload error, if the follow-up reload failed.
func (a *App) reportOutcome() {
	v := a.ctl.View()
	if v.Success != "" {
		printlnFn(v.Success)
	}
	if v.Error != "" {
		printlnFn(v.Error)
	}
}

func (a *App) reportError(err error) {
	var opErr *controller.OpError
	if errors.As(err, &opErr) {
		printlnFn(opErr.Kind.Message())
		return
	}
	printlnFn("Error:", err)
}
