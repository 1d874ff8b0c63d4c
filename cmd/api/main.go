package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/moodmate-app/moodmate-backend/internal/analytics"
	"github.com/moodmate-app/moodmate-backend/internal/api/router"
	"github.com/moodmate-app/moodmate-backend/internal/auth"
	"github.com/moodmate-app/moodmate-backend/internal/chat"
	appconfig "github.com/moodmate-app/moodmate-backend/internal/config"
	"github.com/moodmate-app/moodmate-backend/internal/llm"
	"github.com/moodmate-app/moodmate-backend/internal/observability/metrics"
	"github.com/moodmate-app/moodmate-backend/internal/premium"
	"github.com/moodmate-app/moodmate-backend/internal/shop"
	"github.com/moodmate-app/moodmate-backend/internal/speech"
	"github.com/moodmate-app/moodmate-backend/internal/therapists"
	"github.com/moodmate-app/moodmate-backend/internal/triage"
	"github.com/moodmate-app/moodmate-backend/internal/users"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting moodmate API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create pgx pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open sql db", "error", err)
		os.Exit(1)
	}
	defer func() { _ = sqlDB.Close() }()

	// Language model chain: Gemini primary, Bedrock secondary.
	var primary, secondary llm.Client
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		primary = gemini
	}

	awsOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		awsOpts = append(awsOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOpts...)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	if cfg.BedrockModelID != "" {
		bedrock, err := llm.NewBedrockClient(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID)
		if err != nil {
			logger.Error("failed to create bedrock client", "error", err)
			os.Exit(1)
		}
		secondary = bedrock
	}

	var model llm.Client
	switch {
	case primary != nil && secondary != nil:
		model = llm.NewFallbackClient(primary, secondary, logger)
	case primary != nil:
		model = primary
	case secondary != nil:
		model = secondary
	}
	model = llm.WithTimeout(model, cfg.LLMTimeout)
	if model == nil {
		logger.Warn("no language model configured, serving template replies")
	}

	chatMetrics := metrics.NewChatMetrics(nil)

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AWSEndpointOverride != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointOverride)
			o.UsePathStyle = true
		}
	})
	audioStore := speech.NewAudioStore(s3Client, cfg.AudioBucket)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = redisClient.Close() }()
	}
	audioCache := speech.NewCache(redisClient, cfg.AudioCacheTTL)

	var ttsPrimary, ttsFallback speech.Provider
	if cfg.ElevenLabsAPIKey != "" {
		ttsPrimary = speech.NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID, cfg.TTSTimeout)
	}
	ttsFallback = speech.NewTranslateTTSClient(cfg.TTSFallbackLang, cfg.TTSTimeout)
	synthesizer := speech.NewSynthesizer(ttsPrimary, ttsFallback, audioStore, audioCache, chatMetrics, logger)

	usersRepo := users.NewRepository(pool)
	historyStore := chat.NewHistoryStore(pool)
	moodClassifier := triage.NewMoodClassifier(model, logger)
	replyGenerator := chat.NewReplyGenerator(model, cfg.HistoryWindow, logger)

	chatHandler := chat.NewHandler(
		historyStore,
		moodClassifier,
		replyGenerator,
		synthesizer,
		usersRepo,
		cfg.ChatCoinReward,
		cfg.HistoryWindow,
		chatMetrics,
		logger,
	)

	usersHandler := users.NewHandler(usersRepo, logger)
	premiumHandler := premium.NewHandler(usersRepo, logger)
	analyticsHandler := analytics.NewHandler(analytics.NewRepository(sqlDB), logger)
	authService := auth.NewService(usersRepo, cfg.JWTSecret, cfg.JWTExpiry, logger)
	authHandler := auth.NewHandler(authService, logger)
	audioHandler := speech.NewHandler(audioStore, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		UsersHandler:       usersHandler,
		ShopHandler:        shop.NewHandler(),
		TherapistsHandler:  therapists.NewHandler(),
		PremiumHandler:     premiumHandler,
		AnalyticsHandler:   analyticsHandler,
		AuthHandler:        authHandler,
		AudioHandler:       audioHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		DatabasePing:       pool.Ping,
		AIReady:            model != nil,
		TTSReady:           cfg.ElevenLabsAPIKey != "",
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
