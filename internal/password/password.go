// Package password hashes and verifies user credentials with argon2id.
// Hashes are self-describing PHC strings, so parameters can change without
// invalidating stored credentials.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrMismatch means the plaintext does not match the stored hash. This is
	// the expected wrong-password outcome, not a server fault.
	ErrMismatch = errors.New("password: hash and plaintext do not match")

	// ErrInvalidHash means the stored hash could not be parsed. A credential
	// in this state is a server-side fault, never a user error.
	ErrInvalidHash = errors.New("password: malformed hash string")
)

// Parameters follow the argon2id defaults the original credential store used.
const (
	timeCost   = 3
	memoryCost = 64 * 1024 // KiB
	threads    = 4
	saltLen    = 16
	keyLen     = 32
)

// Hash derives an argon2id hash of plaintext with a fresh random salt.
// Two calls with the same input produce different strings.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, timeCost, memoryCost, threads, keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memoryCost,
		timeCost,
		threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify recomputes the hash using the parameters embedded in encoded and
// compares in constant time. Returns ErrMismatch on a wrong password and
// ErrInvalidHash if encoded is not a parseable argon2id string.
func Verify(encoded, plaintext string) error {
	salt, key, t, m, p, err := decode(encoded)
	if err != nil {
		return err
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, t, m, p, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return ErrMismatch
	}
	return nil
}

func decode(encoded string) (salt, key []byte, t, m uint32, p uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, ErrInvalidHash
	}

	return salt, key, t, m, p, nil
}
