package domain

import "net/mail"

// ValidEmail reports whether addr is syntactically valid email.
// Validation is explicit rather than tag-driven so every rule is visible at
// the call site.
func ValidEmail(addr string) bool {
	_, err := mail.ParseAddress(addr)
	return err == nil
}
