package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "github.com/Anatolt/ru-cities-n-poi/internal/adapters/redis"
	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
)

func newTestCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.NewFrom(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestCache_RoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	in := domain.Route{
		Kind: domain.RouteRegion,
		Region: &domain.RegionView{
			Region: domain.EntityRef{Name: "North", Slug: "north"},
			Cities: []domain.EntityRef{{Name: "Port City", Slug: "port-city"}},
		},
	}
	if err := c.Set(ctx, "route:region/north", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.Route
	ok, err := c.Get(ctx, "route:region/north", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.Kind != domain.RouteRegion || out.Region.Cities[0].Slug != "port-city" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var out domain.Route
	ok, err := c.Get(ctx, "route:nope", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}

	if err := c.Set(ctx, "k", domain.Route{Kind: domain.RouteHome}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatalf("expected miss after delete")
	}
}
