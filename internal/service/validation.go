package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const minPasswordLength = 6

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{10,}$`)
)

type field struct {
	name  string
	value string
}

// missingFields : names of the empty fields, in the given order
func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func validPassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
