package registration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validInput() Input {
	return Input{
		Name:            "Maria Conceição",
		Email:           "maria@example.com",
		Phone:           "(11) 99999-8888",
		Password:        "Abc12345",
		ConfirmPassword: "Abc12345",
	}
}

func newTestValidator() *Validator {
	return NewValidator(DefaultMessages)
}

func TestValidate_ValidInput(t *testing.T) {
	errs := newTestValidator().Validate(validInput())
	require.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidate_EmptyInputReportsEveryField(t *testing.T) {
	errs := newTestValidator().Validate(Input{})

	require.Equal(t, DefaultMessages["name.min"], errs.Get(FieldName))
	require.Equal(t, DefaultMessages["email.emailaddr"], errs.Get(FieldEmail))
	require.Equal(t, DefaultMessages["phone.min"], errs.Get(FieldPhone))
	require.Equal(t, DefaultMessages["password.min"], errs.Get(FieldPassword))
	require.Equal(t, DefaultMessages["confirmPassword.required"], errs.Get(FieldConfirmPassword))
	require.Len(t, errs, len(Fields))
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		want  string // message key, "" when valid
	}{
		{"name too short", FieldName, "A", "name.min"},
		{"name minimum", FieldName, "Al", ""},
		{"name maximum", FieldName, strings.Repeat("a", 50), ""},
		{"name too long", FieldName, strings.Repeat("a", 51), "name.max"},
		{"name with digit", FieldName, "Maria 2", "name.personname"},
		{"name with symbol", FieldName, "Maria!", "name.personname"},
		{"name accented", FieldName, "José Ávila", ""},
		{"name with hyphen", FieldName, "Ana-Maria", "name.personname"},
		{"name no-break space", FieldName, "Ana\u00a0Maria", ""},
		{"name vertical tab", FieldName, "Ana\vMaria", ""},
		{"name ideographic space", FieldName, "Ana\u3000Maria", ""},
		{"name zero width space", FieldName, "Ana\u200bMaria", "name.personname"},

		{"email empty reports syntax", FieldEmail, "", "email.emailaddr"},
		{"email plain", FieldEmail, "plainaddress", "email.emailaddr"},
		{"email missing local", FieldEmail, "@example.com", "email.emailaddr"},
		{"email missing domain", FieldEmail, "user@", "email.emailaddr"},
		{"email double at", FieldEmail, "user@@example.com", "email.emailaddr"},
		{"email with space", FieldEmail, "user name@example.com", "email.emailaddr"},
		{"email single letter tld", FieldEmail, "a@c.c", "email.emailaddr"},
		{"email quoted local", FieldEmail, `"x y"@c.com`, "email.emailaddr"},
		{"email non-ascii local", FieldEmail, "joão@c.com", "email.emailaddr"},
		{"email no tld", FieldEmail, "a@b", "email.emailaddr"},
		{"email double dot", FieldEmail, "a..b@c.com", "email.emailaddr"},
		{"email leading dot", FieldEmail, ".a@c.com", "email.emailaddr"},
		{"email trailing local dot", FieldEmail, "a.@c.com", "email.emailaddr"},
		{"email ip literal", FieldEmail, "a@[127.0.0.1]", "email.emailaddr"},
		{"email valid", FieldEmail, "john.doe+tag@sub.example.org", ""},
		{"email apostrophe", FieldEmail, "o'neil@example.com", ""},
		{"email short", FieldEmail, "a@c.co", ""},

		{"phone digits only", FieldPhone, "1199998888", "phone.min"},
		{"phone masked", FieldPhone, "(11) 99999-8888", ""},
		{"phone fourteen", FieldPhone, "(11) 9999-8888", ""},
		{"phone overflow", FieldPhone, "(11) 99999-88889", "phone.max"},

		{"password short", FieldPassword, "Ab1", "password.min"},
		{"password no uppercase", FieldPassword, "abc12345", "password.strongpassword"},
		{"password no lowercase", FieldPassword, "ABC12345", "password.strongpassword"},
		{"password no digit", FieldPassword, "Abcdefgh", "password.strongpassword"},
		{"password valid", FieldPassword, "Abc12345", ""},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput().With(tt.field, tt.value)
			if tt.field == FieldPassword {
				in.ConfirmPassword = tt.value
			}
			errs := v.Validate(in)
			if tt.want == "" {
				require.Empty(t, errs.Get(tt.field))
				return
			}
			require.Equal(t, DefaultMessages[tt.want], errs.Get(tt.field))
		})
	}
}

func TestValidate_ConfirmationMismatch(t *testing.T) {
	in := validInput()
	in.ConfirmPassword = "X"

	errs := newTestValidator().Validate(in)

	require.Equal(t, DefaultMessages["confirmPassword.eqfield"], errs.Get(FieldConfirmPassword))
	require.Empty(t, errs.Get(FieldPassword), "mismatch is reported on the confirmation only")
}

func TestValidate_ConfirmationReportedWithOtherErrors(t *testing.T) {
	in := Input{Password: "abc", ConfirmPassword: "abd"}

	errs := newTestValidator().Validate(in)

	require.Equal(t, DefaultMessages["confirmPassword.eqfield"], errs.Get(FieldConfirmPassword))
	require.Equal(t, DefaultMessages["password.min"], errs.Get(FieldPassword))
}

func TestValidate_UsesProvidedMessages(t *testing.T) {
	v := NewValidator(Messages{"name.min": "curto demais"})

	errs := v.Validate(validInput().With(FieldName, "A"))
	require.Equal(t, "curto demais", errs.Get(FieldName))

	errs = v.Validate(validInput().With(FieldEmail, ""))
	require.Equal(t, DefaultMessages["email.emailaddr"], errs.Get(FieldEmail), "falls back to defaults")
}

func TestMessages_LookupFallback(t *testing.T) {
	require.Equal(t, "invalid phone", Messages{}.Lookup(FieldPhone, "unknown"))
}

func TestIsEmailAddress(t *testing.T) {
	require.True(t, IsEmailAddress("first.last@mail.example.com.br"))
	require.True(t, IsEmailAddress("under_score-1@x-y.io"))
	require.False(t, IsEmailAddress("a@-x.com"), "domain labels start alphanumeric")
	require.False(t, IsEmailAddress("a@x.c0m"), "tld is letters only")
	require.False(t, IsEmailAddress("a@x..com"))
}

func TestIsStrongPassword(t *testing.T) {
	require.True(t, IsStrongPassword("aB3"))
	require.False(t, IsStrongPassword("ab3"))
	require.False(t, IsStrongPassword("AB3"))
	require.False(t, IsStrongPassword("aBc"))
}

func TestValidate_NameProperties(t *testing.T) {
	v := newTestValidator()

	rapid.Check(t, func(r *rapid.T) {
		name := rapid.StringMatching(`[a-zA-ZÀ-ÿ ]{2,50}`).Draw(r, "name")
		require.Empty(r, v.Validate(validInput().With(FieldName, name)).Get(FieldName), "name %q", name)
	})

	rapid.Check(t, func(r *rapid.T) {
		name := rapid.StringMatching(`[a-zA-Z]{0,1}|[a-zA-Z]{51,80}`).Draw(r, "name")
		require.NotEmpty(r, v.Validate(validInput().With(FieldName, name)).Get(FieldName), "name %q", name)
	})

	rapid.Check(t, func(r *rapid.T) {
		prefix := rapid.StringMatching(`[a-zA-Z]{1,20}`).Draw(r, "prefix")
		bad := rapid.SampledFrom([]string{"0", "7", "!", "@", "#", "_", ".", "-"}).Draw(r, "bad")
		suffix := rapid.StringMatching(`[a-zA-Z]{0,20}`).Draw(r, "suffix")
		name := prefix + bad + suffix
		require.NotEmpty(r, v.Validate(validInput().With(FieldName, name)).Get(FieldName), "name %q", name)
	})
}

func TestValidate_EmailProperties(t *testing.T) {
	v := newTestValidator()

	rapid.Check(t, func(r *rapid.T) {
		email := rapid.StringMatching(`[a-z][a-z0-9]{0,9}@[a-z]{1,10}\.(com|org|net|io)`).Draw(r, "email")
		require.Empty(r, v.Validate(validInput().With(FieldEmail, email)).Get(FieldEmail), "email %q", email)
	})

	rapid.Check(t, func(r *rapid.T) {
		email := rapid.StringMatching(`[a-z]{1,10}(\.[a-z]{2,4})?`).Draw(r, "email")
		require.NotEmpty(r, v.Validate(validInput().With(FieldEmail, email)).Get(FieldEmail), "email %q", email)
	})
}

func TestValidate_PasswordProperties(t *testing.T) {
	v := newTestValidator()

	rapid.Check(t, func(r *rapid.T) {
		pw := rapid.StringMatching(`[a-z0-9]{8,20}`).Draw(r, "password")
		in := validInput()
		in.Password, in.ConfirmPassword = pw, pw
		require.NotEmpty(r, v.Validate(in).Get(FieldPassword), "password %q", pw)
	})

	rapid.Check(t, func(r *rapid.T) {
		pw := "aA1" + rapid.StringMatching(`[a-zA-Z0-9]{5,20}`).Draw(r, "rest")
		in := validInput()
		in.Password, in.ConfirmPassword = pw, pw
		errs := v.Validate(in)
		require.Empty(r, errs.Get(FieldPassword), "password %q", pw)
		require.Empty(r, errs.Get(FieldConfirmPassword))
	})
}

func TestValidate_AtMostOneMessagePerField(t *testing.T) {
	v := newTestValidator()

	rapid.Check(t, func(r *rapid.T) {
		in := Input{
			Name:            rapid.String().Draw(r, "name"),
			Email:           rapid.String().Draw(r, "email"),
			Phone:           rapid.String().Draw(r, "phone"),
			Password:        rapid.String().Draw(r, "password"),
			ConfirmPassword: rapid.String().Draw(r, "confirm"),
		}
		errs := v.Validate(in)
		for f, msg := range errs {
			require.Contains(r, Fields, f)
			require.NotEmpty(r, msg)
		}
		require.Equal(r, errs, v.Validate(in), "validation is deterministic")
	})
}
