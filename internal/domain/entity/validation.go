package entity

import (
	"regexp"
	"unicode/utf8"
)

// Field length bounds for account attributes.
const (
	NameMinLen     = 3
	NameMaxLen     = 30
	PasswordMinLen = 6
	PasswordMaxLen = 64
)

// emailPattern accepts a restricted email grammar: word/`+`/`-`/`.` characters
// in the local part, dot-separated host labels, alphabetic TLD.
var emailPattern = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-.]+\.[a-z]+$`)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the full set of failed rules for a candidate, in rule order.
type FieldErrors []FieldError

// Fields groups messages by field name for rendering.
func (fe FieldErrors) Fields() map[string][]string {
	if len(fe) == 0 {
		return nil
	}

	out := make(map[string][]string, len(fe))
	for _, e := range fe {
		out[e.Field] = append(out[e.Field], e.Message)
	}

	return out
}

// Has reports whether any rule failed for the given field.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}

	return false
}

// Candidate holds the user-supplied fields checked before an account is
// created or updated. Password fields are transient: they exist only to be
// validated and turned into a digest.
type Candidate struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string

	// PasswordRequired is true on signup. On a profile edit the password may
	// be left empty to keep the current one; when set it is fully validated.
	PasswordRequired bool
}

type rule struct {
	field   string
	message string
	fails   func(c *Candidate) bool
}

// Validation is an explicit ordered rule list. Every rule is evaluated so the
// caller can render all errors at once.
var accountRules = []rule{
	{
		field:   "name",
		message: "is required",
		fails:   func(c *Candidate) bool { return c.Name == "" },
	},
	{
		field:   "name",
		message: "must be between 3 and 30 characters",
		fails: func(c *Candidate) bool {
			n := utf8.RuneCountInString(c.Name)

			return c.Name != "" && (n < NameMinLen || n > NameMaxLen)
		},
	},
	{
		field:   "email",
		message: "is required",
		fails:   func(c *Candidate) bool { return c.Email == "" },
	},
	{
		field:   "email",
		message: "is not a valid email",
		fails: func(c *Candidate) bool {
			return c.Email != "" && !emailPattern.MatchString(c.Email)
		},
	},
	{
		field:   "password",
		message: "is required",
		fails:   func(c *Candidate) bool { return c.PasswordRequired && c.Password == "" },
	},
	{
		field:   "password",
		message: "must be between 6 and 64 characters",
		fails: func(c *Candidate) bool {
			n := utf8.RuneCountInString(c.Password)

			return c.Password != "" && (n < PasswordMinLen || n > PasswordMaxLen)
		},
	},
	{
		field:   "passwordConfirmation",
		message: "does not match password",
		fails: func(c *Candidate) bool {
			if c.Password == "" && c.PasswordConfirmation == "" {
				return false
			}

			return c.Password != c.PasswordConfirmation
		},
	},
}

// Validate evaluates every rule and returns the complete set of failures.
// An empty result means the candidate may be persisted.
func (c *Candidate) Validate() FieldErrors {
	var failed FieldErrors
	for _, r := range accountRules {
		if r.fails(c) {
			failed = append(failed, FieldError{Field: r.field, Message: r.message})
		}
	}

	return failed
}
