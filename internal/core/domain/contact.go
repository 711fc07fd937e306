package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactForm is the "ask a builder" form
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// FieldError describes an invalid form field
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired checks that a field is not blank
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return FieldError{Field: field, Message: "this field is required"}
	}
	return nil
}

// ValidateEmail checks the address shape: something@something.something, no spaces
func ValidateEmail(value string) error {
	if !emailPattern.MatchString(value) {
		return FieldError{Field: "email", Message: "please enter a valid email address"}
	}
	return nil
}

// Validate returns one error per invalid field, in form order
func (f ContactForm) Validate() []FieldError {
	var errs []FieldError

	collect := func(err error) {
		if fe, ok := err.(FieldError); ok {
			errs = append(errs, fe)
		}
	}

	collect(ValidateRequired("name", f.Name))
	if err := ValidateRequired("email", f.Email); err != nil {
		collect(err)
	} else {
		collect(ValidateEmail(strings.TrimSpace(f.Email)))
	}
	collect(ValidateRequired("message", f.Message))

	return errs
}

// Draft renders the form as a plain-text message
func (f ContactForm) Draft() string {
	return fmt.Sprintf("From: %s <%s>\n\n%s\n",
		strings.TrimSpace(f.Name),
		strings.TrimSpace(f.Email),
		strings.TrimSpace(f.Message))
}
