package blocks

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// DeterministicID derives a stable UUID from a key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func DeterministicID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SeededClientID derives the client identifier for seeded demo content, so
// gallery fixtures keep the same IDs across restarts.
func SeededClientID(path string) uuid.UUID {
	return DeterministicID("yoastseo:block:" + strings.ToLower(strings.TrimSpace(path)))
}
