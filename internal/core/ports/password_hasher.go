package ports

// PasswordHasher abstracts the one-way hashing primitive so the core never
// sees the underlying algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
