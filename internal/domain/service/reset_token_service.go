package service

// ResetTokenService creates one-time password-reset tokens.
// Only the hash of a token is ever stored.
type ResetTokenService interface {
	// Generate returns a new random raw token and its hash.
	Generate() (raw string, hash string, err error)

	// Hash computes the one-way hash of a raw token.
	Hash(raw string) string
}
