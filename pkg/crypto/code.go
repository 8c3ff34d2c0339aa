package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
)

// CodeLength is the number of digits in a verification code
const CodeLength = 6

var randomInt = rand.Int

// GenerateCode generates a uniformly random numeric verification code,
// zero-padded to CodeLength digits. Leading zeros are preserved, so the
// result is a string, never an integer.
func GenerateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < CodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := randomInt(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n), nil
}

// HashCode returns the hex-encoded SHA-256 digest of a verification code.
// Only this digest is persisted; the plaintext code is discarded after
// it has been mailed.
func HashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// VerifyCode compares a submitted code against a stored digest without
// leaking timing information about the match position.
func VerifyCode(submitted, storedHash string) bool {
	submittedHash := HashCode(submitted)
	return subtle.ConstantTimeCompare([]byte(submittedHash), []byte(storedHash)) == 1
}
