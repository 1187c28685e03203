package security

import (
	"strings"
	"testing"
	"unicode"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
		wantErr  bool
	}{
		{name: "negative length", length: -1, alphabet: "abc", wantErr: true},
		{name: "empty alphabet", length: 1, alphabet: "", wantErr: true},
		{name: "zero length", length: 0, alphabet: "abc"},
		{name: "single alphabet character", length: 8, alphabet: "X"},
		{name: "temporary password alphabet", length: 64, alphabet: TemporaryPasswordAlphabet},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := RandomString(test.length, test.alphabet)
			if test.wantErr {
				if err == nil {
					t.Fatalf("RandomString(%d, %q) expected error, got nil", test.length, test.alphabet)
				}
				return
			}
			if err != nil {
				t.Fatalf("RandomString(%d, %q) returned error: %v", test.length, test.alphabet, err)
			}
			if len(got) != test.length {
				t.Fatalf("RandomString(%d, %q) len = %d, want %d", test.length, test.alphabet, len(got), test.length)
			}
			for _, char := range got {
				if !strings.ContainsRune(test.alphabet, char) {
					t.Fatalf("RandomString(%d, %q) produced char %q outside alphabet", test.length, test.alphabet, char)
				}
			}
		})
	}
}

func TestTemporaryPasswordMixesCharacterClasses(t *testing.T) {
	t.Parallel()

	for attempt := 0; attempt < 50; attempt++ {
		password, err := TemporaryPassword(4)
		if err != nil {
			t.Fatalf("TemporaryPassword returned error: %v", err)
		}
		if len(password) != 8 {
			t.Fatalf("expected minimum length 8, got %d", len(password))
		}
		if !strings.ContainsFunc(password, unicode.IsUpper) || !strings.ContainsFunc(password, unicode.IsLower) || !strings.ContainsFunc(password, unicode.IsDigit) {
			t.Fatalf("expected upper, lower and digit in %q", password)
		}
	}
}

func TestTokenIDIsUniqueHex(t *testing.T) {
	t.Parallel()

	first, err := TokenID()
	if err != nil {
		t.Fatalf("TokenID returned error: %v", err)
	}
	second, err := TokenID()
	if err != nil {
		t.Fatalf("TokenID returned error: %v", err)
	}
	if len(first) != 32 || first == second {
		t.Fatalf("expected two distinct 32-char ids, got %q and %q", first, second)
	}
}
