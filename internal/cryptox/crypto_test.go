package cryptox

import (
	"encoding/hex"
	"testing"
)

func TestGenerateSecret_LengthAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		s, err := GenerateSecret()
		if err != nil {
			t.Fatalf("GenerateSecret error: %v", err)
		}
		if len(s) != SecretByteSize*2 {
			t.Fatalf("unexpected secret length: %d", len(s))
		}
		if _, err := hex.DecodeString(s); err != nil {
			t.Fatalf("secret is not valid hex: %v", err)
		}
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate secret generated: %s", s)
		}
		seen[s] = struct{}{}
	}
}

func TestDigestSecret_DeterministicAndOneWay(t *testing.T) {
	d1 := DigestSecret("abc")
	d2 := DigestSecret("abc")
	if d1 != d2 {
		t.Fatalf("digest not deterministic: %s vs %s", d1, d2)
	}
	// sha256("abc"), well-known vector
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if d1 != want {
		t.Fatalf("unexpected digest: %s", d1)
	}
	if DigestSecret("abd") == d1 {
		t.Fatal("different inputs produced equal digests")
	}
}

func TestDigestPrefix(t *testing.T) {
	if got := DigestPrefix("0123456789abcdef"); got != "01234567" {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if got := DigestPrefix("short"); got != "short" {
		t.Fatalf("short input should pass through, got %s", got)
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	Wipe(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %d", i, v)
		}
	}
	Wipe(nil) // must not panic
}
