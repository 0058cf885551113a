package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is one rule violation, reported by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult carries either the normalized input or every violation
// found, in check order.
type ValidationResult[T any] struct {
	Value  T
	Errors []FieldError
}

func (r ValidationResult[T]) OK() bool { return len(r.Errors) == 0 }

/* ====================== INPUTS ====================== */

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string
	Password string
}

/* ====================== CHECKS ====================== */

// checker runs every rule and keeps going after a failure.
type checker struct {
	errs []FieldError
}

func (ck *checker) check(field string, value any, tag, message string) bool {
	if err := validate.Var(value, tag); err != nil {
		ck.errs = append(ck.errs, FieldError{Field: field, Message: message})
		return false
	}
	return true
}

// email: required, then format only when something was given.
func (ck *checker) email(value string) {
	if ck.check("email", value, "required", "email is required") {
		ck.check("email", value, "email", "email must be a valid email address")
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateRegister(req RegisterRequest) ValidationResult[RegisterInput] {
	in := RegisterInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    NormalizeEmail(req.Email),
		Password: req.Password,
		Address:  strings.TrimSpace(req.Address),
	}

	var ck checker
	ck.check("name", in.Name, "required", "name is required")
	ck.email(in.Email)
	if ck.check("password", in.Password, "required", "password is required") &&
		ck.check("password", in.Password, "min=6", "password must be at least 6 characters") {
		// bcrypt rejects anything longer, counted in bytes not runes
		ck.check("password", len(in.Password), "max=72", "password must be at most 72 bytes")
	}

	if len(ck.errs) > 0 {
		return ValidationResult[RegisterInput]{Errors: ck.errs}
	}
	return ValidationResult[RegisterInput]{Value: in}
}

func ValidateLogin(req LoginRequest) ValidationResult[LoginInput] {
	in := LoginInput{
		Email:    NormalizeEmail(req.Email),
		Password: req.Password,
	}

	var ck checker
	ck.email(in.Email)
	ck.check("password", in.Password, "required", "password is required")

	if len(ck.errs) > 0 {
		return ValidationResult[LoginInput]{Errors: ck.errs}
	}
	return ValidationResult[LoginInput]{Value: in}
}
