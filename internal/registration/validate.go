package registration

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters (ASCII plus Latin-1 accented) and whitespace only. Whitespace
	// includes \v, no-break and other Unicode space separators.
	personNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+$`)

	// Unquoted ASCII local part, dotted domain, TLD of two or more letters.
	// A leading dot and ".." are rejected in IsEmailAddress.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+-]@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)

	lowerPattern = regexp.MustCompile(`[a-z]`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// Errors maps a field to the message of its first failing rule.
// An empty Errors means the input is valid.
type Errors map[Field]string

// Valid reports whether no field has an error.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Get returns the error message for a field, or "" when the field is valid.
func (e Errors) Get(f Field) string {
	return e[f]
}

// Validator applies the registration rules to an Input.
//
// Rules are declared as struct tags on Input and evaluated in tag order;
// only the first failure per field is reported. The cross-field rule
// (confirmation equals password) reports on FieldConfirmPassword.
type Validator struct {
	validate *validator.Validate
	messages Messages
}

// NewValidator creates a Validator that reports errors using msgs.
// Missing entries fall back to DefaultMessages.
func NewValidator(msgs Messages) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or a duplicate builtin name.
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return IsEmailAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return &Validator{validate: v, messages: msgs}
}

// Validate checks every rule against in and returns the per-field errors.
func (v *Validator) Validate(in Input) Errors {
	errs := make(Errors)

	err := v.validate.Struct(in)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable for non-struct input; Input is always a struct.
		return errs
	}

	for _, fe := range fieldErrs {
		f := Field(fe.Field())
		if _, seen := errs[f]; seen {
			continue
		}
		errs[f] = v.messages.Lookup(f, fe.Tag())
	}
	return errs
}

// IsEmailAddress reports whether s is a plain e-mail address. Quoted local
// parts, IP literals and non-ASCII characters are not accepted.
func IsEmailAddress(s string) bool {
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsStrongPassword reports whether s has at least one lowercase letter,
// one uppercase letter and one digit. Length is checked separately.
func IsStrongPassword(s string) bool {
	return lowerPattern.MatchString(s) &&
		upperPattern.MatchString(s) &&
		digitPattern.MatchString(s)
}
