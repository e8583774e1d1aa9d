package middleware

import "github.com/gin-gonic/gin"

const (
	cacheHitKey    = "cache_hit"
	cacheHeaderKey = "X-Cache"
)

// SetCacheHit records whether the roster came from cache and reports it in the X-Cache header.
func SetCacheHit(c *gin.Context, hit bool) {
	if c == nil {
		return
	}
	c.Set(cacheHitKey, hit)
	if hit {
		c.Header(cacheHeaderKey, "HIT")
	} else {
		c.Header(cacheHeaderKey, "MISS")
	}
}

// CacheHit returns the recorded cache outcome, if any.
func CacheHit(c *gin.Context) (hit bool, recorded bool) {
	if c == nil {
		return false, false
	}
	v, exists := c.Get(cacheHitKey)
	if !exists {
		return false, false
	}
	hit, ok := v.(bool)
	return hit, ok
}
