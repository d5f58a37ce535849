// main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/tripwire/config"
	_ "github.com/ariebrainware/tripwire/docs"
	"github.com/ariebrainware/tripwire/endpoint"
	"github.com/ariebrainware/tripwire/generator"
	"github.com/ariebrainware/tripwire/middleware"
	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/notify"
	"github.com/ariebrainware/tripwire/store"
	"github.com/ariebrainware/tripwire/supervisor"
	"github.com/ariebrainware/tripwire/trap"
	"github.com/ariebrainware/tripwire/util"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// @title        Tripwire API
// @version      1.0
// @description  Honeytoken trap surface and alert lifecycle API.
// @BasePath     /
func main() {
	// Load the configuration
	cfg := config.LoadConfig()
	util.InitLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("tripwire stopped with error")
	}
	log.Info().Msg("tripwire stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	initGeoIP(ctx, cfg)
	defer util.CloseGeoIP()

	// The generate rate limiter uses Redis whenever it is configured.
	config.ConnectOptionalRedis(cfg)

	storage, err := config.ConnectStorage(cfg)
	if err != nil {
		return fmt.Errorf("connect storage: %w", err)
	}
	defer func() {
		if err := storage.Adapter.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close storage")
		}
	}()
	if storage.DB != nil {
		if err := util.SetSecurityLoggerDB(storage.DB); err != nil {
			log.Warn().Err(err).Msg("security events will not be persisted")
		}
	}

	opts := store.Options{}
	if cfg.SeedDemoData {
		opts.SeedTokens = model.DemoTokens()
		opts.SeedAlerts = model.DemoAlerts(time.Now())
	}
	st, err := store.Open(ctx, storage.Adapter, opts)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	notifier, closeNotifiers := buildNotifiers(cfg)
	defer closeNotifiers()

	detectorOpts := []trap.Option{}
	if notifier != nil {
		detectorOpts = append(detectorOpts, trap.WithNotifier(notifier))
	}
	detector := trap.NewDetector(st, detectorOpts...)
	defer detector.Wait()

	gen, err := buildGenerator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build generator: %w", err)
	}

	router := endpoint.SetupRouter(&middleware.Services{
		Store:     st,
		Detector:  detector,
		Generator: gen,
		BaseURL:   cfg.BaseURL,
	}, endpoint.RouterConfig{
		AppName:            cfg.AppName,
		GenerateRateLimit:  cfg.GenerateRateLimit,
		GenerateRateWindow: cfg.GenerateRateWindow,
		Extra: func(r *gin.Engine) {
			r.GET("/metrics", gin.WrapH(promhttp.Handler()))
			r.GET("/swagger/*any", gin.WrapH(httpSwagger.WrapHandler))
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	root := supervisor.New(cfg.AppName, supervisor.Config{})
	root.Add(supervisor.NewHTTPService(server, 10*time.Second))

	if cfg.SimulatorEnabled {
		policy, err := trap.ParsePolicy(cfg.SimulatorPolicy)
		if err != nil {
			return err
		}
		root.Add(trap.NewSimulator(detector, st, cfg.SimulatorInterval, policy))
		log.Info().Dur("interval", cfg.SimulatorInterval).Str("policy", string(policy)).Msg("alert simulator enabled")
	}

	log.Info().Str("addr", server.Addr).Str("storage", cfg.StorageBackend).Msg("tripwire listening")
	if err := root.Serve(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// initGeoIP loads the GeoIP database, downloading it first when a URL is configured and the file is missing.
func initGeoIP(ctx context.Context, cfg *config.Config) {
	if cfg.GeoIPDBPath == "" {
		return
	}
	if _, err := os.Stat(cfg.GeoIPDBPath); os.IsNotExist(err) && cfg.GeoIPDownloadURL != "" {
		path, err := util.DownloadGeoIP(ctx, util.DownloadRequest{
			URL:      cfg.GeoIPDownloadURL,
			DestPath: cfg.GeoIPDBPath,
		})
		if err != nil {
			log.Warn().Err(err).Msg("geoip download failed")
			return
		}
		log.Info().Str("path", path).Msg("geoip database downloaded")
	}
	if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
		log.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip disabled")
	}
}

func buildNotifiers(cfg *config.Config) (notify.Notifier, func()) {
	var notifiers notify.Multi
	closers := []func(){}

	if cfg.WebhookURL != "" {
		notifiers = append(notifiers, notify.NewWebhook(notify.WebhookConfig{URL: cfg.WebhookURL}))
	}
	if cfg.NATSURL != "" {
		n, err := notify.DialNATS(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			log.Warn().Err(err).Str("url", cfg.NATSURL).Msg("nats notifier disabled")
		} else {
			notifiers = append(notifiers, n)
			closers = append(closers, func() { _ = n.Close() })
		}
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	if len(notifiers) == 0 {
		return nil, closeAll
	}
	return notifiers, closeAll
}

func buildGenerator(ctx context.Context, cfg *config.Config) (generator.Generator, error) {
	if cfg.GeneratorProvider == generator.ProviderMock || cfg.GeneratorAPIKey == "" {
		if cfg.GeneratorProvider != generator.ProviderMock {
			log.Warn().Str("provider", cfg.GeneratorProvider).Msg("no generator API key, using mock generator")
		}
		return generator.NewCached(generator.Mock{Delay: 500 * time.Millisecond}, 10*time.Minute), nil
	}

	m, err := generator.NewModel(ctx, cfg.GeneratorProvider, cfg.GeneratorAPIKey, cfg.GeneratorModel)
	if err != nil {
		return nil, err
	}
	llm := generator.NewLLM(m, generator.LLMConfig{Timeout: cfg.GeneratorTimeout})
	return generator.NewCached(llm, 10*time.Minute), nil
}
