package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type cachedReport struct {
	Total decimal.Decimal
	Count int
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisReportCache) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return server, &redisReportCache{client: client}
}

func TestRedisReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on absent key", func(t *testing.T) {
		_, cache := newTestCache(t)

		var dest cachedReport
		hit, err := cache.Get(ctx, "report:dashboard", &dest)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hit {
			t.Errorf("expected a miss on an empty cache")
		}
	})

	t.Run("round trip preserves decimals", func(t *testing.T) {
		_, cache := newTestCache(t)

		total, _ := decimal.NewFromString("550000.25")
		in := cachedReport{Total: total, Count: 3}
		if err := cache.Set(ctx, "report:dashboard", in, 30*time.Second); err != nil {
			t.Fatalf("failed to set: %v", err)
		}

		var out cachedReport
		hit, err := cache.Get(ctx, "report:dashboard", &out)
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if !hit {
			t.Fatalf("expected a hit")
		}
		if !out.Total.Equal(in.Total) || out.Count != in.Count {
			t.Errorf("round trip changed payload: %s/%d", out.Total, out.Count)
		}
	})

	t.Run("entry expires with its TTL", func(t *testing.T) {
		server, cache := newTestCache(t)

		if err := cache.Set(ctx, "report:dashboard", cachedReport{Count: 1}, time.Second); err != nil {
			t.Fatalf("failed to set: %v", err)
		}
		server.FastForward(2 * time.Second)

		var dest cachedReport
		hit, err := cache.Get(ctx, "report:dashboard", &dest)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hit {
			t.Errorf("expected the entry to expire")
		}
	})
}
