package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare local number", "9876543210", "+919876543210"},
		{"with country code", "919876543210", "+919876543210"},
		{"already e164", "+919876543210", "+919876543210"},
		{"with separators", "98765-43210", "+919876543210"},
		{"with spaces and parens", "(987) 654 3210", "+919876543210"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)
			if err != nil {
				t.Fatalf("NormalizePhone(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizePhoneRejectsShortInput(t *testing.T) {
	for _, input := range []string{"", "12345", "98765", "abcdefghij"} {
		if _, err := NormalizePhone(input); err == nil {
			t.Errorf("NormalizePhone(%q) accepted input with fewer than 10 digits", input)
		}
	}
}
