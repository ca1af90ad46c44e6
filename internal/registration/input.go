// Package registration holds the registration form's domain: the input
// record, its validation rules, the phone mask and the collaborator contract
// that receives validated input. Nothing here depends on the terminal UI.
package registration

// Field identifies one input of the registration form.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldPassword,
	FieldConfirmPassword,
}

// Input is the five-field record collected by the form.
// The json tags double as the field keys reported by validation.
type Input struct {
	Name            string `json:"name" validate:"min=2,max=50,personname"`
	Email           string `json:"email" validate:"emailaddr"`
	Phone           string `json:"phone" validate:"min=14,max=15"`
	Password        string `json:"password" validate:"min=8,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Get returns the value of a field.
func (in Input) Get(f Field) string {
	switch f {
	case FieldName:
		return in.Name
	case FieldEmail:
		return in.Email
	case FieldPhone:
		return in.Phone
	case FieldPassword:
		return in.Password
	case FieldConfirmPassword:
		return in.ConfirmPassword
	}
	return ""
}

// With returns a copy of the input with one field replaced.
func (in Input) With(f Field, value string) Input {
	switch f {
	case FieldName:
		in.Name = value
	case FieldEmail:
		in.Email = value
	case FieldPhone:
		in.Phone = value
	case FieldPassword:
		in.Password = value
	case FieldConfirmPassword:
		in.ConfirmPassword = value
	}
	return in
}

// LogFields returns key/value pairs suitable for the structured logger.
// Passwords are never included.
func (in Input) LogFields() []any {
	return []any{
		"name", in.Name,
		"email", in.Email,
		"phone", in.Phone,
		"password", redact(in.Password),
		"confirmPassword", redact(in.ConfirmPassword),
	}
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "[redacted]"
}
