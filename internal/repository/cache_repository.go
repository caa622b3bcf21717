package repository

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// CacheRepository stores rendered responses by key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// CacheKey derives a compact key from an operation name and the canonical
// request bytes. Extra parts (for example the current month) are appended to
// the hashed payload so they change the key.
func CacheKey(operation string, payload []byte, parts ...string) string {
	d := xxhash.New()
	_, _ = d.Write(payload)
	for _, p := range parts {
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(p)
	}
	return "cardopt:" + operation + ":" + strconv.FormatUint(d.Sum64(), 16)
}
