package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/tutorlink/session-gateway/gateway/broker"
	"github.com/tutorlink/session-gateway/gateway/transport"
	"github.com/tutorlink/session-gateway/internal/config"
	"github.com/tutorlink/session-gateway/internal/httputil"
	"github.com/tutorlink/session-gateway/internal/livekit"
	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/internal/otel"
	intredis "github.com/tutorlink/session-gateway/internal/redis"
	"github.com/tutorlink/session-gateway/internal/token"
	"github.com/tutorlink/session-gateway/internal/workflow"
	"github.com/tutorlink/session-gateway/transcripts"
	"github.com/tutorlink/session-gateway/transcripts/relay"
)

type Config struct {
	App     config.App               `mapstructure:"app"`
	HTTP    httputil.Config          `mapstructure:"http"`
	Otel    otel.Config              `mapstructure:"otel"`
	LiveKit livekit.Config           `mapstructure:"livekit"`
	API     transport.Config         `mapstructure:"api"`
	Redis   intredis.Config          `mapstructure:"redis"`
	Speech  transcripts.SourceConfig `mapstructure:"speech"`

	// RelayRedisEnabled turns on the cross-instance transcript bridge.
	RelayRedisEnabled bool   `mapstructure:"relay_redis_enabled"`
	RelayChannel      string `mapstructure:"relay_channel"`

	MaxTranscriptSessions int64         `mapstructure:"max_transcript_sessions"`
	TranscriptIdleTimeout time.Duration `mapstructure:"transcript_idle_timeout"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		v.SetDefault("relay_redis_enabled", false)
		v.SetDefault("relay_channel", "transcripts")
		v.SetDefault("max_transcript_sessions", 32)
		v.SetDefault("transcript_idle_timeout", "5m")

		config.Setup(v, "app")
		httputil.Setup(v, "http")
		otel.Setup(v, "otel")
		livekit.Setup(v, "livekit")
		transport.Setup(v, "api")
		intredis.Setup(v, "redis")
		transcripts.SetupSource(v, "speech")

		// override default addrs to ease testing
		v.SetDefault("http.addr", "0.0.0.0:5050")
	})
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger := log.NewLogger()
	defer func() { _ = logger.Sync() }()

	// global background context
	ctx := context.Background()

	// Initialize OpenTelemetry
	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting session gateway",
		log.String("addr", config.HTTP.Addr),
		log.String("livekitHost", config.LiveKit.Host))

	// Create components
	issuer := token.New(config.LiveKit.APIKey, config.LiveKit.APISecret, logger.Module("Issuer"))
	registry := livekit.NewClient(&config.LiveKit, issuer, logger.Module("Registry"))
	sessionBroker := broker.New(registry, issuer, logger.Module("Broker"))

	hub := relay.NewHub(logger.Module("Relay"))

	var publisher transcripts.Publisher = hub
	var bridge *relay.Bridge
	if config.RelayRedisEnabled {
		redisClient := intredis.NewClient(&config.Redis)
		bridge = relay.NewBridge(redisClient, hub, config.RelayChannel, logger.Module("Bridge"))
		bridge.Start(ctx)
		publisher = bridge
	}

	source := transcripts.NewSource(&config.Speech, logger.Module("Speech"))
	transcriber := transcripts.NewManager(
		source,
		publisher,
		config.MaxTranscriptSessions,
		config.TranscriptIdleTimeout,
		logger.Module("Transcripts"),
	)

	// Setup router
	router := transport.NewRouter(&config.API, sessionBroker, transcriber, hub, logger.Module("Router"))
	server := httputil.NewServer(&config.HTTP, router.Handler())

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", log.String("addr", config.HTTP.Addr))
		if err := server.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", log.Error(err))
		}
	}()

	logger.Info("Session gateway started",
		log.String("serviceType", string(registry.Kind())))

	// Setup graceful shutdown
	cleanup := func(ctx context.Context) {
		_ = server.Shutdown(ctx)

		transcriber.Close()
		if bridge != nil {
			bridge.Stop()
		}
		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
