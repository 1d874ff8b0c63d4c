package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/moodmate-app/moodmate-backend/internal/analytics"
	"github.com/moodmate-app/moodmate-backend/internal/auth"
	"github.com/moodmate-app/moodmate-backend/internal/chat"
	httpmiddleware "github.com/moodmate-app/moodmate-backend/internal/http/middleware"
	"github.com/moodmate-app/moodmate-backend/internal/premium"
	"github.com/moodmate-app/moodmate-backend/internal/shop"
	"github.com/moodmate-app/moodmate-backend/internal/speech"
	"github.com/moodmate-app/moodmate-backend/internal/therapists"
	"github.com/moodmate-app/moodmate-backend/internal/users"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger            *logging.Logger
	ChatHandler       *chat.Handler
	UsersHandler      *users.Handler
	ShopHandler       *shop.Handler
	TherapistsHandler *therapists.Handler
	PremiumHandler    *premium.Handler
	AnalyticsHandler  *analytics.Handler
	AuthHandler       *auth.Handler
	AudioHandler      *speech.Handler
	MetricsHandler    http.Handler

	CORSAllowedOrigins []string

	// Health probe inputs.
	DatabasePing func(ctx context.Context) error
	AIReady      bool
	TTSReady     bool
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.health)
	r.Get("/api/health", cfg.health)
	r.Get("/api/test", cfg.test)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.ChatHandler != nil {
			api.Post("/chat", cfg.ChatHandler.Chat)
		}
		if cfg.UsersHandler != nil {
			api.Route("/user/{id}", func(user chi.Router) {
				user.Get("/", cfg.UsersHandler.GetUser)
				user.Post("/coins", cfg.UsersHandler.UpdateCoins)
				user.Post("/purchase", cfg.UsersHandler.Purchase)
				user.Post("/streak", cfg.UsersHandler.UpdateStreak)
			})
		}
		if cfg.AnalyticsHandler != nil {
			api.Get("/analytics/{id}", cfg.AnalyticsHandler.GetAnalytics)
		}
		if cfg.TherapistsHandler != nil {
			api.Get("/therapists", cfg.TherapistsHandler.ListTherapists)
		}
		if cfg.ShopHandler != nil {
			api.Get("/shop", cfg.ShopHandler.ListItems)
		}
		if cfg.AuthHandler != nil {
			api.Post("/auth/signup", cfg.AuthHandler.Signup)
			api.Post("/auth/login", cfg.AuthHandler.Login)
		}
	})

	if cfg.PremiumHandler != nil {
		r.Route("/premium", func(p chi.Router) {
			p.Get("/plans", cfg.PremiumHandler.ListPlans)
			p.Get("/status/{id}", cfg.PremiumHandler.Status)
			p.Post("/subscribe", cfg.PremiumHandler.Subscribe)
			p.Get("/features/{id}", cfg.PremiumHandler.Features)
		})
	}

	if cfg.AudioHandler != nil {
		r.Get("/static/audio/{name}", cfg.AudioHandler.ServeAudio)
	}

	return r
}

func (cfg *Config) health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if cfg.DatabasePing == nil {
		database = "not configured"
	} else if err := cfg.DatabasePing(r.Context()); err != nil {
		database = "unreachable"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":           "success",
		"server":           "MoodMate Backend",
		"database":         database,
		"ai_ready":         cfg.AIReady,
		"elevenlabs_ready": cfg.TTSReady,
		"timestamp":        time.Now().Format(time.RFC3339),
	})
}

func (cfg *Config) test(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "success",
		"message":   "Server is running",
		"timestamp": time.Now().Format(time.RFC3339),
		"endpoints": map[string]string{
			"chat":       "/api/chat (POST)",
			"therapists": "/api/therapists (GET)",
			"shop":       "/api/shop (GET)",
		},
	})
}
