/*
Package randx provides identifier generation and validation helpers.

It produces UUID message identifiers, collision-free blob object keys, and
cryptographically secure random picks.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MessageID generates a UUID v4 string used as the ephemeral identifier of a live message.
func MessageID() string {
	return uuid.New().String()
}

// ObjectKey builds a blob key of the form "<prefix>/<uuid><ext>" keeping the
// lower-cased extension of fileName.
func ObjectKey(prefix, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
}

// IsValidID reports whether id is a canonical UUID, the format of every stored record key.
func IsValidID(id string) bool {
	parsed, err := uuid.Parse(id)
	return err == nil && parsed.String() == strings.ToLower(id)
}

// AllValidIDs reports whether every id passes IsValidID.
func AllValidIDs(ids []string) bool {
	for _, id := range ids {
		if !IsValidID(id) {
			return false
		}
	}
	return true
}

// Index returns a uniformly random index in [0, n) using crypto/rand.
func Index(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("randx: invalid range %d", n)
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random index: %v", err)
	}

	return int(num.Int64()), nil
}
