package dto

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const passwordSymbols = "!@#$%^&*"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	GodID    int64  `json:"god_id"`
	Pseudo   string `json:"pseudo"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

// Validate enforces the registration schema with per-field messages.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GodID,
			validation.Required.Error("Le dieu est requis.")),
		validation.Field(&r.Pseudo,
			validation.Required.Error("Le nom est requis."),
			validation.Length(3, 30).Error("Le nom doit contenir entre 3 et 30 caractères.")),
		validation.Field(&r.Email,
			validation.Required.Error("L'email est requis."),
			validation.Match(emailPattern).Error("L'email doit être au format correct (ex: exemple@domaine.com).")),
		validation.Field(&r.Password,
			validation.Required.Error("Le mot de passe est requis."),
			validation.Length(8, 0).Error("Le mot de passe doit contenir au moins 8 caractères."),
			validation.By(passwordComplexity)),
	)
}

// passwordComplexity requires at least one digit and one symbol.
func passwordComplexity(value interface{}) error {
	password, _ := value.(string)
	if password == "" {
		return nil
	}
	hasDigit := false
	hasSymbol := false
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
		}
		if strings.ContainsRune(passwordSymbols, r) {
			hasSymbol = true
		}
	}
	if !hasDigit || !hasSymbol {
		return errors.New("Le mot de passe doit contenir au moins un chiffre et un caractère spécial.")
	}
	return nil
}

// LoginRequest payload for login.
type LoginRequest struct {
	Pseudo   string `json:"pseudo"`
	Password string `json:"password"`
}

// Validate enforces the login schema.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Pseudo,
			validation.Required.Error("Le nom est requis."),
			validation.Length(3, 30).Error("Le nom doit contenir entre 3 et 30 caractères.")),
		validation.Field(&r.Password,
			validation.Required.Error("Le mot de passe est requis."),
			validation.Length(8, 0).Error("Le mot de passe doit contenir au moins 8 caractères.")),
	)
}

// LoginResponse is the successful login body: the token also travels in the
// jwt cookie.
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	User      int64     `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ValidationDetails flattens ozzo field errors into an error-detail map.
func ValidationDetails(err error) map[string]any {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make(map[string]any, len(fieldErrs))
	for field, ferr := range fieldErrs {
		details[field] = ferr.Error()
	}
	return details
}
