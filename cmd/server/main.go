package main

import (
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"bodygraph/internal/chart"
	"bodygraph/internal/enrichment"
	"bodygraph/internal/ephemeris"
	"bodygraph/internal/ephemeris/remote"
	jwttoken "bodygraph/internal/jwt_token"
	"bodygraph/internal/location"
	"bodygraph/internal/platform/config"
	"bodygraph/internal/platform/httpserver"
	"bodygraph/internal/platform/logger"
	"bodygraph/internal/platform/metrics"
	"bodygraph/internal/platform/middleware"
	platformredis "bodygraph/internal/platform/redis"
	"bodygraph/internal/scan"
	httptransport "bodygraph/internal/transport/http"
	"bodygraph/pkg/platform/circuit"
)

// jwtValidator adapts the token service to the auth middleware.
type jwtValidator struct {
	svc *jwttoken.JWTService
}

func (v jwtValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	claims, err := v.svc.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{Subject: claims.Subject}, nil
}

// main wires dependencies and owns the server lifecycle. Business logic
// lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	m := metrics.New()

	provider := ephemeris.Instrument(remote.New(cfg.EphemerisBaseURL), m.ObserveEphemerisLatency)
	charts, err := chart.New(provider, chart.WithLogger(log))
	if err != nil {
		log.Error("chart service init failed", "error", err)
		os.Exit(1)
	}
	scans, err := scan.New(charts, scan.WithLogger(log), scan.WithWorkers(cfg.ScanWorkers))
	if err != nil {
		log.Error("scan service init failed", "error", err)
		os.Exit(1)
	}

	var resolver location.Resolver = location.NewGuarded(
		location.NewNominatim(cfg.NominatimBaseURL, cfg.NominatimUserAgent),
		circuit.New("nominatim"),
		location.WithGuardLogger(log),
	)
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		resolver = location.NewCached(resolver, redisClient.Client, cfg.Redis.CacheTTL,
			location.WithMetrics(m),
			location.WithLogger(log),
		)
		defer redisClient.Close()
	}

	opts := []httptransport.HandlerOption{httptransport.WithResolver(resolver)}
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres init failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		opts = append(opts, httptransport.WithEnrichment(enrichment.NewPostgresStore(db)))
	}

	tokens := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	handler := httptransport.New(charts, scans, log, m, opts...)
	router := httptransport.NewRouter(handler, jwtValidator{svc: tokens}, log)

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting bodygraph", "addr", cfg.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
		os.Exit(1)
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	if err := httpserver.Shutdown(srv); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
