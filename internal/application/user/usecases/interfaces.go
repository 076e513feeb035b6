package usecases

// PasswordHasher abstracts credential hashing so use cases stay free of the
// bcrypt dependency.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
