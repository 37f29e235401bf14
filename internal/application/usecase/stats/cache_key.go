package stats

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// cacheKeyPrefix namespaces stats entries in the shared cache.
const cacheKeyPrefix = "stats"

// CacheKey derives a cache key from the JSON encoding of parts.
// Equal inputs always map to the same key, so a changed item, category or source
// invalidates the entry without explicit eviction.
func CacheKey(kind string, parts ...any) (string, error) {
	digest := xxhash.New()
	encoder := json.NewEncoder(digest)
	for _, part := range parts {
		if err := encoder.Encode(part); err != nil {
			return "", fmt.Errorf("failed to encode cache key part: %w", err)
		}
	}
	return fmt.Sprintf("%s:%s:%016x", cacheKeyPrefix, kind, digest.Sum64()), nil
}
