// Package validate produces field-scoped error maps for entity forms. A
// non-empty map blocks submission before any network call happens. The rules
// mirror what every form enforces: trimmed required text with per-field
// minimum lengths, a plain email shape, a permissive phone charset, positive
// prices and durations, and uniqueness against the existing collection that
// excludes the record being edited.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// Errors maps field name to a user-facing message.
type Errors map[string]string

// Valid reports whether the form may be submitted.
func (e Errors) Valid() bool { return len(e) == 0 }

var (
	// one @, at least one dot after it, no whitespace
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

const (
	minPhoneDigits = 8
	minPassword    = 6
)

func requiredText(e Errors, field, value, label string, minLen int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		e[field] = label + " is required"
		return
	}
	if len(trimmed) < minLen {
		e[field] = label + " must be at least " + strconv.Itoa(minLen) + " characters"
	}
}

func email(e Errors, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		e[field] = "email is required"
		return
	}
	if !emailPattern.MatchString(trimmed) {
		e[field] = "enter a valid email address"
	}
}

func phone(e Errors, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		e[field] = "phone is required"
		return
	}
	if !phonePattern.MatchString(trimmed) {
		e[field] = "phone may only contain digits, spaces, parentheses, + and -"
		return
	}
	significant := 0
	for _, r := range trimmed {
		if r >= '0' && r <= '9' || r == '+' {
			significant++
		}
	}
	if significant < minPhoneDigits {
		e[field] = "phone must have at least " + strconv.Itoa(minPhoneDigits) + " digits"
	}
}

func positivePrice(e Errors, field string, value float64) {
	if value <= 0 {
		e[field] = "price must be a number greater than 0"
	}
}

func nonNegativeStock(e Errors, field string, value int) {
	if value < 0 {
		e[field] = "stock must be 0 or more"
	}
}

func positiveDuration(e Errors, field string, value int) {
	if value <= 0 {
		e[field] = "duration must be a positive number of minutes"
	}
}

// password is required on create and optional on edit; when present it must
// meet the minimum length either way.
func password(e Errors, field, value string, editing bool) {
	if value == "" {
		if !editing {
			e[field] = "password is required"
		}
		return
	}
	if len(value) < minPassword {
		e[field] = "password must be at least " + strconv.Itoa(minPassword) + " characters"
	}
}
