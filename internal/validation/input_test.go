package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMobileNumber(t *testing.T) {
	valid := []string{"111", "+1 555-0100", "0123456789", "+919876543210"}
	for _, v := range valid {
		assert.NoError(t, ValidateMobileNumber(v), v)
	}

	invalid := []string{"abc", "555-CALL", "+", "12345678901234567890123"}
	for _, v := range invalid {
		assert.Error(t, ValidateMobileNumber(v), v)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("p"))
	assert.NoError(t, ValidatePassword(strings.Repeat("x", 72)))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 73)))
}
