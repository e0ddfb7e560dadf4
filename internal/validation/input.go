// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var mobileNumberRe = regexp.MustCompile(`^\+?[0-9][0-9 \-]*$`)

// ValidateMobileNumber checks that a mobile number contains only digits with
// an optional leading + and separators. Length is bounded, not enforced to a
// national format; uniqueness is the real constraint and lives in the store.
func ValidateMobileNumber(mobile string) error {
	if len(mobile) > 20 {
		return fmt.Errorf("mobile number must not exceed 20 characters")
	}
	if !mobileNumberRe.MatchString(mobile) {
		return fmt.Errorf("mobile number may only contain digits, spaces, dashes and a leading +")
	}
	return nil
}

// ValidatePassword bounds password length. There is deliberately no
// complexity rule; bcrypt caps input at 72 bytes and longer inputs would be
// silently truncated.
func ValidatePassword(password string) error {
	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 characters")
	}
	return nil
}
