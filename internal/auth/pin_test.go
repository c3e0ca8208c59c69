package auth

import (
	"strings"
	"testing"
)

func TestValidPIN(t *testing.T) {
	valid := []string{"0000", "1234", "9999"}
	for _, pin := range valid {
		if !ValidPIN(pin) {
			t.Errorf("expected %q to be valid", pin)
		}
	}

	invalid := []string{"", "123", "12345", "12a4", "12.4", "١٢٣٤", " 123"}
	for _, pin := range invalid {
		if ValidPIN(pin) {
			t.Errorf("expected %q to be invalid", pin)
		}
	}
}

func TestLegacyHashPIN(t *testing.T) {
	// base64("4321") for PIN 1234, the exact stored form of old documents.
	if got := LegacyHashPIN("1234"); got != "NDMyMQ==" {
		t.Errorf("expected NDMyMQ==, got %q", got)
	}
	if LegacyHashPIN("1234") == LegacyHashPIN("4321") {
		t.Error("distinct PINs must encode differently")
	}
}

func TestHashAndVerifyPIN(t *testing.T) {
	t.Run("bcrypt_round_trip", func(t *testing.T) {
		hash, err := HashPIN("1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(hash, "$2") {
			t.Errorf("expected bcrypt hash, got %q", hash)
		}
		if !VerifyPIN("1234", hash) {
			t.Error("expected correct PIN to verify")
		}
		if VerifyPIN("4321", hash) {
			t.Error("expected wrong PIN to fail")
		}
	})

	t.Run("legacy_stored_form", func(t *testing.T) {
		stored := LegacyHashPIN("5678")
		if !VerifyPIN("5678", stored) {
			t.Error("expected legacy stored PIN to verify")
		}
		if VerifyPIN("8765", stored) {
			t.Error("expected wrong PIN to fail against legacy form")
		}
	})

	t.Run("empty_stored_never_verifies", func(t *testing.T) {
		if VerifyPIN("1234", "") {
			t.Error("expected no stored PIN to never verify")
		}
	})
}
