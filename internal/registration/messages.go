package registration

import "fmt"

// Messages holds validation messages keyed by "<field>.<rule>", where rule
// is the validator tag that failed (min, max, emailaddr, personname, ...).
type Messages map[string]string

// MessageKey builds the Messages key for a field and rule.
func MessageKey(f Field, rule string) string {
	return string(f) + "." + rule
}

// Lookup returns the message for a failed rule, falling back to the English
// defaults and then to a generic message.
func (m Messages) Lookup(f Field, rule string) string {
	key := MessageKey(f, rule)
	if msg, ok := m[key]; ok {
		return msg
	}
	if msg, ok := DefaultMessages[key]; ok {
		return msg
	}
	return fmt.Sprintf("invalid %s", f)
}

// DefaultMessages are the English validation messages.
var DefaultMessages = Messages{
	"name.min":                 "Name must have at least 2 characters",
	"name.max":                 "Name must have at most 50 characters",
	"name.personname":          "Name must contain only letters",
	"email.emailaddr":          "Invalid e-mail",
	"phone.min":                "Phone must have at least 14 characters",
	"phone.max":                "Phone must have at most 15 characters",
	"password.min":             "Password must have at least 8 characters",
	"password.strongpassword":  "Password must contain at least one uppercase letter, one lowercase letter and one number",
	"confirmPassword.required": "Password confirmation is required",
	"confirmPassword.eqfield":  "Passwords do not match",
}
