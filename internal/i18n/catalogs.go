package i18n

import "github.com/zjrosen/signup/internal/registration"

var english = Catalog{
	Locale:   "en",
	Title:    "Registration System",
	Subtitle: "Fill in the details below to create your account",
	Footer:   "© 2024 Registration System. All rights reserved.",

	FormTitle: "User Registration",
	Fields: map[registration.Field]FieldText{
		registration.FieldName:            {Label: "Name", Placeholder: "Enter your full name"},
		registration.FieldEmail:           {Label: "E-mail", Placeholder: "you@email.com"},
		registration.FieldPhone:           {Label: "Phone", Placeholder: "(11) 99999-9999"},
		registration.FieldPassword:        {Label: "Password", Placeholder: "Enter your password"},
		registration.FieldConfirmPassword: {Label: "Confirm Password", Placeholder: "Confirm your password"},
	},
	Required:    "required",
	SubmitLabel: "Register User",
	BusyLabel:   "Registering...",

	SuccessTitle:  "Registration completed successfully!",
	SuccessDetail: "Your details were recorded in the system.",
	PasswordOK:    "✓ Password meets the security requirements",

	Requirements: `**Password requirements:**

- At least 8 characters
- At least one uppercase letter
- At least one lowercase letter
- At least one number
`,

	Validation: registration.DefaultMessages,
}

var portuguese = Catalog{
	Locale:   "pt-BR",
	Title:    "Sistema de Cadastro",
	Subtitle: "Preencha os dados abaixo para criar sua conta",
	Footer:   "© 2024 Sistema de Cadastro. Todos os direitos reservados.",

	FormTitle: "Cadastro de Usuário",
	Fields: map[registration.Field]FieldText{
		registration.FieldName:            {Label: "Nome", Placeholder: "Digite seu nome completo"},
		registration.FieldEmail:           {Label: "E-mail", Placeholder: "seu@email.com"},
		registration.FieldPhone:           {Label: "Telefone", Placeholder: "(11) 99999-9999"},
		registration.FieldPassword:        {Label: "Senha", Placeholder: "Digite sua senha"},
		registration.FieldConfirmPassword: {Label: "Confirmar Senha", Placeholder: "Confirme sua senha"},
	},
	Required:    "obrigatório",
	SubmitLabel: "Cadastrar Usuário",
	BusyLabel:   "Cadastrando...",

	SuccessTitle:  "Cadastro realizado com sucesso!",
	SuccessDetail: "Seus dados foram registrados no sistema.",
	PasswordOK:    "✓ Senha atende aos requisitos de segurança",

	Requirements: `**Requisitos da senha:**

- Mínimo de 8 caracteres
- Pelo menos uma letra maiúscula
- Pelo menos uma letra minúscula
- Pelo menos um número
`,

	Validation: registration.Messages{
		"name.min":                 "Nome deve ter pelo menos 2 caracteres",
		"name.max":                 "Nome deve ter no máximo 50 caracteres",
		"name.personname":          "Nome deve conter apenas letras",
		"email.emailaddr":          "E-mail inválido",
		"phone.min":                "Telefone deve ter pelo menos 14 caracteres",
		"phone.max":                "Telefone deve ter no máximo 15 caracteres",
		"password.min":             "Senha deve ter pelo menos 8 caracteres",
		"password.strongpassword":  "Senha deve conter pelo menos uma letra maiúscula, uma minúscula e um número",
		"confirmPassword.required": "Confirmação de senha é obrigatória",
		"confirmPassword.eqfield":  "Senhas não coincidem",
	},
}
