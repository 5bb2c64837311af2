package validators

import (
	"net/mail"
	"strings"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail accepts a bare address with a dotted domain, e.g. "sara@mail.com".
// Display-name forms like "Sara <sara@mail.com>" are rejected.
func IsEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
