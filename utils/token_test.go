package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	controller := NewJWTToken(&Config{SigningKey: "test-signing-key"})

	identity := TokenObject{
		IdentityID: "0b0e45a5-64c6-4a5b-8d84-1b7f2a3c4d5e",
		Phone:      "+919876543210",
	}

	token, err := controller.CreateToken(identity)
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	got, err := controller.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}

	if got != identity {
		t.Errorf("VerifyToken = %+v, want %+v", got, identity)
	}
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	issuer := NewJWTToken(&Config{SigningKey: "issuer-key"})
	verifier := NewJWTToken(&Config{SigningKey: "other-key"})

	token, err := issuer.CreateToken(TokenObject{IdentityID: "id", Phone: "+919876543210"})
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	if _, err := verifier.VerifyToken(token); err == nil {
		t.Error("VerifyToken accepted a token signed with a different key")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	controller := NewJWTToken(&Config{SigningKey: "test-signing-key"})

	if _, err := controller.VerifyToken("not-a-token"); err == nil {
		t.Error("VerifyToken accepted a malformed token")
	}
}
