package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const responseMetaKey = "response_meta"

// Meta keys written into the response envelope.
const (
	MetaCacheHit     = "cache_hit"
	MetaEnterpriseID = "enterprise_id"
	MetaElapsedMS    = "elapsed_ms"
)

// WithResponseMeta attaches a metadata map to every request below the API
// prefix. Handlers fill it and pass ExtractMeta to the response writer.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		meta := map[string]interface{}{}
		c.Set(responseMetaKey, meta)
		c.Next()
		meta[MetaElapsedMS] = time.Since(start).Milliseconds()
	}
}

// SetMeta stores one metadata entry for the current response.
func SetMeta(c *gin.Context, key string, value interface{}) {
	if meta := ExtractMeta(c); meta != nil {
		meta[key] = value
		return
	}
	c.Set(responseMetaKey, map[string]interface{}{key: value})
}

// SetCacheHit records whether the response was served from the enrollment cache.
func SetCacheHit(c *gin.Context, hit bool) {
	SetMeta(c, MetaCacheHit, hit)
	if id := c.Param(EnterpriseParam); id != "" {
		SetMeta(c, MetaEnterpriseID, id)
	}
}

// ExtractMeta returns the metadata map stored on the context, or nil.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	value, exists := c.Get(responseMetaKey)
	if !exists {
		return nil
	}
	meta, _ := value.(map[string]interface{})
	return meta
}
