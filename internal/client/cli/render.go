package cli

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/contactbook/internal/client/controller"
	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

func recordsBadge(n int) string {
	return fmt.Sprintf("%d Records", n)
}

func (a *App) renderList(v controller.View) {
	printlnFn(fmt.Sprintf("Contacts [%s]", recordsBadge(v.Count())))
	switch {
	case v.Empty() && v.Loading:
		printlnFn("Loading...")
	case v.Empty():
		printlnFn("No contacts found")
	default:
		printlnFn(renderTable(v.Contacts))
	}
	if v.Error != "" {
		printlnFn(v.Error)
	}
}

// renderTable lays contacts out in aligned columns, in list order.
func renderTable(contacts []models.Contact) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL")
	for _, c := range contacts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.FullName(), c.PhoneNumber, c.Email)
	}
	_ = w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

func renderForm(v controller.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", v.FormTitle(), v.FormHint())

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, f := range models.EditableFields {
		val, _ := v.Draft.Get(f)
		fmt.Fprintf(w, "  %s\t(%s)\t%s\n", f.Label(), f, val)
	}
	_ = w.Flush()

	fmt.Fprintf(&b, "[save] %s", v.SubmitLabel())
	if v.CanCancel() {
		b.WriteString("  [cancel] Cancel")
	}
	return b.String()
}
