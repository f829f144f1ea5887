package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/observability"
	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/web"
	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
	"github.com/Anatolt/ru-cities-n-poi/internal/guide"
)

type Handlers struct {
	V    *guide.ViewService
	HTML *web.Renderer
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/guide", h.apiRoute)
	s.mux.Get("/api/guide/*", h.apiRoute)
	// Every remaining path is a guide route; the dispatcher's transition
	// table decides what it means, including NotFound.
	s.mux.Get("/", h.htmlRoute)
	s.mux.Get("/*", h.htmlRoute)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// fragmentOf extracts the route fragment for a request. The API prefix
// is stripped so both surfaces feed the dispatcher identical segments.
func fragmentOf(r *http.Request) string {
	if rest, ok := strings.CutPrefix(r.URL.Path, "/api/guide"); ok {
		return rest
	}
	return r.URL.Path
}

func (h *Handlers) apiRoute(w http.ResponseWriter, r *http.Request) {
	rt := h.V.Route(r.Context(), fragmentOf(r))
	observability.ObserveResolve(string(rt.Kind))

	switch rt.Kind {
	case domain.RouteNotFound:
		writeProblem(w, http.StatusNotFound, "Not Found", "no entity at this route")
		return
	case domain.RouteError:
		writeProblem(w, http.StatusServiceUnavailable, "Guide Unavailable", rt.Err)
		return
	}

	etag, body := calcETagAndBody(rt)
	// If the client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write route body")
	}
}

func (h *Handlers) htmlRoute(w http.ResponseWriter, r *http.Request) {
	rt := h.V.Route(r.Context(), fragmentOf(r))
	observability.ObserveResolve(string(rt.Kind))

	status := http.StatusOK
	switch rt.Kind {
	case domain.RouteNotFound:
		status = http.StatusNotFound
	case domain.RouteError:
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.HTML.Page(w, rt); err != nil {
		log.Error().Err(err).Msg("failed to render page")
	}
}
