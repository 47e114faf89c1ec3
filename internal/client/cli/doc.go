// Package cli provides the interactive contactbook command-line client.
//
// It wires configuration, logging, the HTTP contacts client and the form
// controller, then runs a REPL. The contact list is fetched in the
// background at startup; every create, update or delete is followed by a
// full reload of the list.
//
// Commands:
//   - list | l            print the contacts table
//   - refresh | r         reload the list (skipped while a load is running)
//   - new                 leave edit mode and show the form
//   - set <field> <value> change a form field (name, surname, phone, email)
//   - edit <id>           load a contact into the form
//   - cancel              leave edit mode, discarding changes
//   - form                show the form
//   - save | submit       create or update the contact in the form
//   - delete <id>         delete a contact after confirmation
//   - status              show loading, error and success state
//   - exit | quit         leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
