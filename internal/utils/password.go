package utils

import "golang.org/x/crypto/bcrypt"

// HashClientSecret returns a bcrypt hash of a client secret using the given
// cost.  Used by the hash-secret admin command when provisioning clients.
func HashClientSecret(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyClientSecret safely compares a bcrypt hash with a presented secret.
func VerifyClientSecret(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
