// Package validator provides input validation and sanitization for the
// public intake forms and admin API.
package validator

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation errors
var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInputTooLong = errors.New("input exceeds maximum length")
	ErrEmptyInput   = errors.New("input cannot be empty")
)

// Field length limits, matching the column sizes on the inquiry table
const (
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxPhoneLength   = 20
	MaxMessageLength = 10000
)

// FieldErrors collects per-field validation messages keyed by field name.
type FieldErrors map[string][]string

// Add appends a message to the errors for a field
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// HasErrors reports whether any field failed validation
func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

// ValidateEmail validates email address format according to RFC 5322.
// Returns nil if valid, or an appropriate error.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return ErrEmptyInput
	}

	// RFC 5321 specifies max email length of 254 characters
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return ErrInputTooLong
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	return nil
}

// InquiryInput is the submitted form data common to both inquiry kinds.
type InquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ValidateInquiry validates a contact or purchase inquiry submission.
// The message body is required for general contact but optional for
// purchase inquiries. Returns the collected per-field errors.
func ValidateInquiry(in InquiryInput, messageRequired bool) FieldErrors {
	fieldErrs := make(FieldErrors)

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fieldErrs.Add("name", "name is required")
	} else if utf8.RuneCountInString(name) > MaxNameLength {
		fieldErrs.Add("name", "name is too long")
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		fieldErrs.Add("email", "email is required")
	} else if err := ValidateEmail(email); err != nil {
		fieldErrs.Add("email", "email format is invalid")
	}

	if utf8.RuneCountInString(strings.TrimSpace(in.Phone)) > MaxPhoneLength {
		fieldErrs.Add("phone", "phone is too long")
	}

	message := strings.TrimSpace(in.Message)
	if messageRequired && message == "" {
		fieldErrs.Add("message", "message is required")
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		fieldErrs.Add("message", "message is too long")
	}

	return fieldErrs
}

// Pagination constants
const (
	DefaultLimit = 12
	MaxLimit     = 100
)

// ValidatePagination validates and sanitizes pagination parameters.
// Returns sanitized limit and offset values.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// SanitizeString removes control characters, trims whitespace and enforces
// a maximum length. A maxLength of 0 disables the length check.
func SanitizeString(input string, maxLength int) string {
	input = strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\t' || r == 127 {
			return -1
		}
		return r
	}, input)

	input = strings.TrimSpace(input)

	if maxLength > 0 && utf8.RuneCountInString(input) > maxLength {
		runes := []rune(input)
		input = string(runes[:maxLength])
	}

	return input
}

// SortKeys maps client-facing sort parameters to ORDER BY clauses for
// painting list views. Anything outside this whitelist is ignored.
var SortKeys = map[string]string{
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
	"price":       "price_cad ASC",
	"-price":      "price_cad DESC",
	"title":       "title ASC",
	"-title":      "title DESC",
}

// ValidateSort returns the ORDER BY clause for a sort parameter, falling
// back to newest-first when the parameter is unknown or empty.
func ValidateSort(sort string) string {
	if clause, ok := SortKeys[sort]; ok {
		return clause
	}
	return "created_at DESC"
}
