// Package service declares the outbound ports the usecases depend on:
// hashing, tokens, QR codes, notification channels and fanout publishing.
package service

// PasswordHasher turns account passwords into stored hashes and back-checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
