// Package i18n holds the user-facing text of the registration form.
package i18n

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zjrosen/signup/internal/registration"
)

// ErrUnknownLocale is returned by Lookup for locales without a catalog.
var ErrUnknownLocale = errors.New("unknown locale")

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// FieldText is the label and placeholder of one input.
type FieldText struct {
	Label       string
	Placeholder string
}

// Catalog is every string the form shell and registration form render.
type Catalog struct {
	Locale string

	Title    string // Page header
	Subtitle string
	Footer   string

	FormTitle   string
	Fields      map[registration.Field]FieldText
	Required    string // Hint shown next to every label
	SubmitLabel string
	BusyLabel   string

	SuccessTitle  string
	SuccessDetail string
	PasswordOK    string

	// Requirements is markdown rendered below the form.
	Requirements string

	Validation registration.Messages
}

var catalogs = map[string]Catalog{
	"en":    english,
	"pt-BR": portuguese,
}

// Lookup returns the catalog for locale. An empty locale selects
// DefaultLocale.
func Lookup(locale string) (Catalog, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	c, ok := catalogs[locale]
	if !ok {
		return Catalog{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownLocale, locale, Locales())
	}
	return c, nil
}

// MustLookup is Lookup for locales known to exist. It panics otherwise.
func MustLookup(locale string) Catalog {
	c, err := Lookup(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locales returns the available locale names, sorted.
func Locales() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
