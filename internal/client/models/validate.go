package models

import (
	"strings"
)

// FieldIssue describes one advisory problem with a draft field.
type FieldIssue struct {
	Field   Field
	Message string
}

// ValidationError is returned by Draft.Validate. The server stays the
// authority; these checks only mirror what a form's required/type hints
// would block.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, string(is.Field)+": "+is.Message)
	}
	return "invalid contact: " + strings.Join(parts, "; ")
}

// Validate checks that every field is filled in and that the email has a
// basic local@domain shape. It returns nil or a *ValidationError.
func (d Draft) Validate() error {
	var issues []FieldIssue

	for _, f := range EditableFields {
		v, _ := d.Get(f)
		if strings.TrimSpace(v) == "" {
			issues = append(issues, FieldIssue{Field: f, Message: "is required"})
		}
	}

	if email := strings.TrimSpace(d.Email); email != "" && !looksLikeEmail(email) {
		issues = append(issues, FieldIssue{Field: FieldEmail, Message: "must look like name@example.com"})
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

func looksLikeEmail(s string) bool {
	if strings.ContainsAny(s, " \t") {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return !strings.Contains(s[:at], "@")
}
