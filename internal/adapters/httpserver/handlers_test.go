package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/httpserver"
	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/web"
	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
	"github.com/Anatolt/ru-cities-n-poi/internal/guide"
)

type staticSource struct {
	raw any
	err error
}

func (s *staticSource) Fetch(ctx context.Context) (any, error) { return s.raw, s.err }

func sampleRaw(t *testing.T) any {
	t.Helper()
	var v any
	err := json.Unmarshal([]byte(`[
	  {"name": "North", "cities": [
	    {"name": "Port City", "landmarks": [
	      {"name": "Old Tower", "description": "A tower.", "merch": ["T-shirt"]}
	    ]}
	  ]}
	]`), &v)
	if err != nil {
		t.Fatalf("bad test JSON: %v", err)
	}
	return v
}

func newTestServer(t *testing.T, src domain.DatasetSource) http.Handler {
	t.Helper()
	rn, err := web.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	svc := guide.NewViewService(guide.NewLoader(src), nil, time.Minute)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{V: svc, HTML: rn})
	return srv.Mux()
}

func get(t *testing.T, h http.Handler, path string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAPI_RouteChain(t *testing.T) {
	h := newTestServer(t, &staticSource{raw: sampleRaw(t)})

	cases := []struct {
		path string
		kind domain.RouteKind
	}{
		{"/api/guide", domain.RouteHome},
		{"/api/guide/region/north", domain.RouteRegion},
		{"/api/guide/region/north/port-city", domain.RouteCity},
		{"/api/guide/region/north/port-city/old-tower", domain.RouteAttraction},
	}
	for _, c := range cases {
		rr := get(t, h, c.path, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: status %d", c.path, rr.Code)
		}
		var rt domain.Route
		if err := json.Unmarshal(rr.Body.Bytes(), &rt); err != nil {
			t.Fatalf("%s: decode: %v", c.path, err)
		}
		if rt.Kind != c.kind {
			t.Fatalf("%s: kind %q, want %q", c.path, rt.Kind, c.kind)
		}
	}
}

func TestAPI_NotFoundVsError(t *testing.T) {
	ok := newTestServer(t, &staticSource{raw: sampleRaw(t)})
	rr := get(t, ok, "/api/guide/region/south", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing region: status %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type: %q", ct)
	}

	rr = get(t, ok, "/api/guide/region/north/port-city/old-tower/extra", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("too many segments: status %d", rr.Code)
	}

	broken := newTestServer(t, &staticSource{raw: "scalar"})
	rr = get(t, broken, "/api/guide", nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("load failure: status %d", rr.Code)
	}
}

func TestAPI_ETag(t *testing.T) {
	h := newTestServer(t, &staticSource{raw: sampleRaw(t)})

	first := get(t, h, "/api/guide/region/north", nil)
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}
	second := get(t, h, "/api/guide/region/north", map[string]string{"If-None-Match": etag})
	if second.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", second.Code)
	}
}

func TestHTML_Routes(t *testing.T) {
	h := newTestServer(t, &staticSource{raw: sampleRaw(t)})

	rr := get(t, h, "/", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "North") {
		t.Fatalf("home: %d\n%s", rr.Code, rr.Body.String())
	}

	rr = get(t, h, "/region/north/port-city/old-tower", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("attraction: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "T-shirt (souvenir)") {
		t.Fatalf("merch item missing:\n%s", rr.Body.String())
	}

	rr = get(t, h, "/region/south", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing region: %d", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, &staticSource{raw: sampleRaw(t)})
	if rr := get(t, h, "/healthz", nil); rr.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rr.Code)
	}
}
