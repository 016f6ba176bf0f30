// Package cache stores finished analysis reports keyed by article content
// so repeat submissions skip the LLM and data-source calls entirely.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for report caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ArticleKey derives the cache key from article text. Whitespace at the
// edges does not change identity; the short hash doubles as the public
// article_hash in reports.
func ArticleKey(articleText string) string {
	return "clearview:v1:" + ArticleHash(articleText)
}

// ArticleHash returns the 16-hex-char content hash exposed in reports
func ArticleHash(articleText string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(articleText)))
	return hex.EncodeToString(sum[:])[:16]
}
