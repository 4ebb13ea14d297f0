package server

import (
	"strings"
	"unicode"
)

type requiredField struct {
	name  string
	value string
}

// missingFields returns the names of required fields that are empty, in
// declaration order.
func missingFields(fields []requiredField) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

func isValidPhoneNumber(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	// 10-15 digits without the +
	if len(cleaned) < 10 || len(cleaned) > 15 {
		return false
	}

	// Obviously fake numbers
	badNumbers := map[string]bool{
		"0000000000": true,
		"1111111111": true,
		"1234567890": true,
		"9999999999": true,
		"0123456789": true,
	}

	return !badNumbers[cleaned]
}
