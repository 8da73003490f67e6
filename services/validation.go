package services

import (
	"regexp"
	"strings"
)

// Validation regex patterns for hand-entered vendor/client fields.
var (
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	pinPattern   = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateGSTIN validates a GSTIN (15-character alphanumeric). Empty is
// valid; the field is optional on vendors and clients.
func ValidateGSTIN(gstin string) bool {
	gstin = strings.TrimSpace(strings.ToUpper(gstin))
	if gstin == "" {
		return true
	}
	return len(gstin) == 15 && gstinPattern.MatchString(gstin)
}

// ValidatePAN validates a PAN number (10-character alphanumeric).
func ValidatePAN(pan string) bool {
	pan = strings.TrimSpace(strings.ToUpper(pan))
	if pan == "" {
		return true
	}
	return len(pan) == 10 && panPattern.MatchString(pan)
}

// ValidatePINCode validates an Indian PIN code (6 digits, first non-zero).
func ValidatePINCode(pin string) bool {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return true
	}
	return len(pin) == 6 && pinPattern.MatchString(pin)
}

// ValidatePhone validates an Indian mobile number (10 digits, 6-9 first).
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return true
	}
	return len(phone) == 10 && phonePattern.MatchString(phone)
}

// ValidateEmail validates an email address format.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// ValidateVendorFields checks the tax-identity fields of an expense vendor
// or campaign client and returns field -> error message for violations.
func ValidateVendorFields(fields map[string]string) map[string]string {
	errors := make(map[string]string)

	if v := fields["gstin"]; v != "" && !ValidateGSTIN(v) {
		errors["gstin"] = "Invalid GSTIN format (expected: 15-character, e.g., 27AAPFU0939F1ZV)"
	}
	if v := fields["pan"]; v != "" && !ValidatePAN(v) {
		errors["pan"] = "Invalid PAN format (expected: 10-character, e.g., ABCDE1234F)"
	}
	if v := fields["phone"]; v != "" && !ValidatePhone(v) {
		errors["phone"] = "Invalid phone number (expected: 10 digits starting with 6-9)"
	}
	if v := fields["email"]; v != "" && !ValidateEmail(v) {
		errors["email"] = "Invalid email format"
	}

	return errors
}
