package credentials

import "golang.org/x/crypto/bcrypt"

// Hash hashes a plaintext password with the configured bcrypt cost.
func Hash(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks a password against its stored hash using bcrypt's
// constant-time comparison.
func Verify(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
