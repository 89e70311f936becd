package security

import "testing"

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" || hash == "" {
		t.Fatalf("unexpected hash: %q", hash)
	}
	if !h.Check("s3cret", hash) {
		t.Fatal("correct password rejected")
	}
	if h.Check("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
