package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"go-matching-service/internal/domain"
	"go-matching-service/pkg/logger"
)

// cacheTTL keeps vectors around long enough for repeated batch runs over the
// same talent pool without letting stale model output live forever.
const cacheTTL = 24 * time.Hour

// CachedEmbedder wraps another embedder with a Redis read-through cache.
// Cache failures are logged and fall through to the inner provider, so a
// broken Redis never breaks scoring.
type CachedEmbedder struct {
	inner domain.Embedder
	redis *goredis.Client
	model string
}

func NewCachedEmbedder(inner domain.Embedder, redisClient *goredis.Client, model string) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, redis: redisClient, model: model}
}

func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	key := e.cacheKey(text)
	if cached, err := e.redis.Get(ctx, key).Result(); err == nil {
		var vector []float64
		if err := json.Unmarshal([]byte(cached), &vector); err == nil {
			return vector, nil
		}
		// Unreadable entry, treat as a miss and overwrite below.
	} else if err != goredis.Nil && logger.Log != nil {
		logger.Log.Warn("embedding cache read failed", "error", err.Error())
	}

	vector, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(vector); err == nil {
		if err := e.redis.Set(ctx, key, payload, cacheTTL).Err(); err != nil && logger.Log != nil {
			logger.Log.Warn("embedding cache write failed", "error", err.Error())
		}
	}
	return vector, nil
}

// cacheKey hashes the text so arbitrarily long inputs map to fixed-size keys.
// The model name is part of the key; switching models must not reuse vectors.
func (e *CachedEmbedder) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(e.model + "\x00" + text))
	return fmt.Sprintf("emb:%s:%s", e.model, hex.EncodeToString(sum[:]))
}
