package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "github.com/Anatolt/ru-cities-n-poi/internal/adapters/httpserver"
	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/observability"
	redisad "github.com/Anatolt/ru-cities-n-poi/internal/adapters/redis"
	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/source"
	"github.com/Anatolt/ru-cities-n-poi/internal/adapters/web"
	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
	"github.com/Anatolt/ru-cities-n-poi/internal/guide"
	"github.com/Anatolt/ru-cities-n-poi/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// dataset source: local file override wins, else the fixed URL
	var src domain.DatasetSource
	if cfg.DataFile != "" {
		src = source.NewFile(cfg.DataFile)
	} else {
		client, err := source.New(cfg.DataURL, cfg.FetchRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize dataset source")
		}
		src = client
	}

	// view cache is optional; the guide works without one
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	svc := guide.NewViewService(guide.NewLoader(src), cache, cfg.CacheTTL)

	renderer, err := web.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build renderer")
	}

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{V: svc, HTML: renderer})

	log.Info().Str("addr", cfg.HTTPAddr).Str("data_url", cfg.DataURL).Msg("guide listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
