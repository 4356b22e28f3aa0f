package utils

import (
	"strings"
	"testing"
)

func TestNewReference(t *testing.T) {
	ref, err := NewReference("APP")
	if err != nil {
		t.Fatalf("NewReference returned error: %v", err)
	}

	if !strings.HasPrefix(ref, "APP") {
		t.Errorf("reference %q missing prefix", ref)
	}

	code := strings.TrimPrefix(ref, "APP")
	if len(code) < 10 {
		t.Errorf("reference code %q shorter than minimum length", code)
	}
	if code != strings.ToUpper(code) {
		t.Errorf("reference code %q is not uppercased", code)
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateOTP()
		if len(code) != 6 {
			t.Fatalf("GenerateOTP() = %q, want 6 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("GenerateOTP() = %q, contains non-digit", code)
			}
		}
	}
}
