package utils

import (
	"fmt"
	"strings"
)

// CountryCallingCode is prepended to bare local numbers. The card currently
// launches in India only.
const CountryCallingCode = "91"

// NormalizePhone canonicalizes user-entered phone input to E.164. Numbers
// already carrying the country prefix pass through; bare 10-digit local
// numbers get the prefix prepended. Inputs with fewer than 10 digits are
// rejected before any provider call is attempted.
func NormalizePhone(input string) (string, error) {
	var sb strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()

	if len(digits) < 10 {
		return "", fmt.Errorf("phone number must have at least 10 digits")
	}

	if len(digits) == 10 {
		return "+" + CountryCallingCode + digits, nil
	}

	if strings.HasPrefix(digits, CountryCallingCode) {
		return "+" + digits, nil
	}

	return "+" + CountryCallingCode + digits, nil
}
