package utils

import "strings"

// NormalizePhone strips formatting characters and reduces a US number to its
// 10 digits. An 11-digit number with a leading country code 1 is accepted;
// anything else returns "".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return ""
	}
	return digits
}

// FormatPhone renders ten digits as (XXX) XXX-XXXX for display.
func FormatPhone(digits string) string {
	if len(digits) != 10 {
		return digits
	}
	return "(" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:]
}
