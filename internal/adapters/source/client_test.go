package source_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/source"
)

func TestClient_Fetch_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"regions": []any{map[string]any{"name": "North"}},
			})
		}
	}))
	defer ts.Close()

	cl, err := source.New(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.Fetch(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	obj, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("unexpected payload type %T", got)
	}
	if _, ok := obj["regions"].([]any); !ok {
		t.Fatalf("unexpected payload: %+v", obj)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Fetch_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := source.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := cl.Fetch(ctx); !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_Fetch_MalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer ts.Close()

	cl, err := source.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := cl.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestClient_New_RequiresURL(t *testing.T) {
	if _, err := source.New("", 5); err == nil {
		t.Fatalf("expected error for empty URL")
	}
}

func TestFile_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.json")
	if err := os.WriteFile(path, []byte(`[{"name": "North"}]`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := source.NewFile(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := got.([]any); !ok {
		t.Fatalf("unexpected payload type %T", got)
	}

	if _, err := source.NewFile(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
