package orchestrator

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	contractx "github.com/finchain/fin/agent/contract"
)

// responseCache keeps synthesized responses for identical queries within a
// TTL. Agent content is static, so repeated queries are safe to replay.
type responseCache struct {
	cache *gocache.Cache
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (c *responseCache) get(query string) (contractx.SynthesizedResponse, bool) {
	value, found := c.cache.Get(cacheKey(query))
	if !found {
		return contractx.SynthesizedResponse{}, false
	}
	resp, ok := value.(contractx.SynthesizedResponse)
	if !ok {
		return contractx.SynthesizedResponse{}, false
	}
	return resp, true
}

func (c *responseCache) put(query string, resp contractx.SynthesizedResponse) {
	c.cache.Set(cacheKey(query), resp, gocache.DefaultExpiration)
}
