package hasher

// PasswordHasher is a one-way credential hasher. Verify is the only sound way
// to compare a submitted plaintext with a stored hash.
//
//go:generate mockery --name PasswordHasher --dir . --output ../../mocks/hasher --outpkg hasher_mock --filename PasswordHasher.go
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
