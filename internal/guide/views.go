package guide

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
)

// ViewService is the read path: it resolves a fragment into its route
// payload, serving view payloads cache-aside when a cache is wired.
// NotFound and Error outcomes are never cached.
type ViewService struct {
	loader   *Loader
	cache    domain.Cache // optional; nil disables caching
	cacheTTL time.Duration
}

func NewViewService(l *Loader, c domain.Cache, ttl time.Duration) *ViewService {
	return &ViewService{loader: l, cache: c, cacheTTL: ttl}
}

// cacheKey canonicalizes a fragment so encoded and hand-typed spellings
// of the same route share one cache entry. Each parsed segment is
// re-escaped before joining: a decoded segment may itself contain a
// slash, which must not read as a segment boundary in the key.
func cacheKey(frag string) string {
	segs := ParseFragment(frag)
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return "route:" + strings.Join(segs, "/")
}

// Route resolves frag against the session dataset. A failed load yields
// the Error route on this and every later call.
func (s *ViewService) Route(ctx context.Context, frag string) domain.Route {
	ds, err := s.loader.Dataset(ctx)
	if err != nil {
		return ErrorRoute(err)
	}

	key := cacheKey(frag)
	if s.cache != nil {
		var rt domain.Route
		if ok, _ := s.cache.Get(ctx, key, &rt); ok {
			return rt
		}
	}

	rt := Dispatch(ds, frag)
	if s.cache != nil && rt.Kind != domain.RouteNotFound && rt.Kind != domain.RouteError {
		// Redis treats a zero TTL as "keep forever", so a sub-second
		// configured TTL is floored to one second rather than dropped.
		ttlSec := int(s.cacheTTL.Seconds())
		if ttlSec < 1 {
			ttlSec = 1
		}
		_ = s.cache.Set(ctx, key, rt, ttlSec)
	}
	return rt
}
