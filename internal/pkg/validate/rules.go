package validate

import (
	"strings"
	"unicode"

	"github.com/GioMjds/pinterest-backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Machine-readable failure codes for registration fields.
const (
	CodeRequired           = "required"
	CodeLocalPartLength    = "local_part_length"
	CodeInvalidEmail       = "invalid_email"
	CodeInvalidDomain      = "invalid_domain"
	CodeInvalidUsername    = "invalid_username"
	CodeInvalidFirstName   = "invalid_first_name"
	CodeInvalidLastName    = "invalid_last_name"
	CodePasswordMismatch   = "password_mismatch"
	CodePasswordComplexity = "invalid_password_complexity"
)

const maxEmailLocalPart = 64

// passwordSpecials is the exact special-character set required in passwords.
const passwordSpecials = "@$!%*?&"

// Rules holds the registration validation rule set. The email-domain
// allow-list is injected so operators can tune it without a redeploy.
type Rules struct {
	v       *validator.Validate
	domains map[string]struct{}
}

// NewRules builds a rule set for the given email-domain allow-list.
// An empty list falls back to DefaultAllowedDomains.
func NewRules(allowedDomains []string) *Rules {
	if len(allowedDomains) == 0 {
		allowedDomains = DefaultAllowedDomains
	}
	domains := make(map[string]struct{}, len(allowedDomains))
	for _, d := range allowedDomains {
		domains[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}
	return &Rules{v: validator.New(), domains: domains}
}

// Registration runs every field rule and aggregates all failures, so a client
// sees the full list instead of fixing one field per round trip.
func (r *Rules) Registration(req *domain.RegisterRequest) error {
	var fields []domain.FieldError
	appendIf := func(fe *domain.FieldError) {
		if fe != nil {
			fields = append(fields, *fe)
		}
	}
	appendIf(r.Email(req.Email))
	appendIf(r.Username(req.Username))
	appendIf(r.Name("first_name", CodeInvalidFirstName, req.FirstName))
	appendIf(r.Name("last_name", CodeInvalidLastName, req.LastName))
	appendIf(r.PasswordMatch(req.Password, req.ConfirmPassword))
	appendIf(r.PasswordComplexity(req.Password))
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Email checks emptiness, local-part length, RFC shape, and the provider
// allow-list, in that order. The allow-list is a deliberate business rule:
// only known providers may register.
func (r *Rules) Email(email string) *domain.FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		return fieldErr("email", CodeRequired, "Email is required.")
	}
	local, domainPart, found := strings.Cut(email, "@")
	if found && len(local) > maxEmailLocalPart {
		return fieldErr("email", CodeLocalPartLength,
			"The local part of the email address cannot exceed 64 characters.")
	}
	if err := r.v.Var(email, "email"); err != nil {
		return fieldErr("email", CodeInvalidEmail, "Invalid email address.")
	}
	if _, ok := r.domains[strings.ToLower(domainPart)]; !ok {
		return fieldErr("email", CodeInvalidDomain,
			"Invalid email domain. "+domainPart+" is not a valid email provider.")
	}
	return nil
}

// Username allows ASCII letters, digits and underscores only. Accented
// letters are rejected, matching the handle rules mobile clients enforce.
// Uniqueness requires the credential store and is checked by the caller.
func (r *Rules) Username(username string) *domain.FieldError {
	username = strings.TrimSpace(username)
	if username == "" {
		return fieldErr("username", CodeRequired, "Username is required.")
	}
	for _, c := range username {
		if !isUsernameRune(c) {
			return fieldErr("username", CodeInvalidUsername,
				"Username must be alphanumeric or contain underscores only.")
		}
	}
	return nil
}

func isUsernameRune(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_'
}

// Name enforces the strict alphabetic-only rule. Hyphens, apostrophes and
// spaces are rejected; loosening this is a pending product decision.
func (r *Rules) Name(field, code, name string) *domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return fieldErr(field, CodeRequired, "Name is required.")
	}
	for _, c := range name {
		if !unicode.IsLetter(c) {
			return fieldErr(field, code, "Name must contain only alphabetic characters.")
		}
	}
	return nil
}

func (r *Rules) PasswordMatch(password, confirm string) *domain.FieldError {
	if password != confirm {
		return fieldErr("confirm_password", CodePasswordMismatch, "Passwords do not match.")
	}
	return nil
}

// PasswordComplexity requires length >= 6, an uppercase letter, a digit,
// one of @$!%*?& and no whitespace.
func (r *Rules) PasswordComplexity(password string) *domain.FieldError {
	ok := len(password) >= 6
	var hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsSpace(c):
			ok = false
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, c):
			hasSpecial = true
		}
	}
	if !ok || !hasUpper || !hasDigit || !hasSpecial {
		return fieldErr("password", CodePasswordComplexity,
			"Password must be at least 6 characters and contain an uppercase letter, a number, a special character, and no spaces.")
	}
	return nil
}

func fieldErr(field, code, message string) *domain.FieldError {
	return &domain.FieldError{Field: field, Code: code, Message: message}
}
