// Package validate holds the storefront's field-level validation rules.
// Struct-shape validation stays on gin binding tags; these are the two
// bespoke rules no tag expresses.
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Nigerian mobile numbers: +234/234/0 prefix, then 7/8/9 + 0/1 and
	// eight more digits (e.g. 0803..., +2347012345678).
	phoneRe = regexp.MustCompile(`^(\+234|234|0)[789][01]\d{8}$`)
)

// Email reports whether s looks like a deliverable address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// NigerianPhone reports whether s is a valid Nigerian mobile number.
func NigerianPhone(s string) bool {
	return phoneRe.MatchString(s)
}
