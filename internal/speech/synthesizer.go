package speech

import (
	"context"

	"github.com/moodmate-app/moodmate-backend/internal/observability/metrics"
	"github.com/moodmate-app/moodmate-backend/pkg/logging"
)

// Synthesizer tries the primary voice, then the fallback voice, and reports
// which one produced the clip. It never returns an error: a chat reply goes
// out with or without audio.
type Synthesizer struct {
	primary  Provider
	fallback Provider
	store    *AudioStore
	cache    *Cache
	metrics  *metrics.ChatMetrics
	logger   *logging.Logger
}

// NewSynthesizer wires the synthesis chain. Any dependency may be nil; a
// missing provider is treated as a failed attempt and a missing store
// disables audio entirely.
func NewSynthesizer(primary, fallback Provider, store *AudioStore, cache *Cache, m *metrics.ChatMetrics, logger *logging.Logger) *Synthesizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Synthesizer{
		primary:  primary,
		fallback: fallback,
		store:    store,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}
}

// Synthesize returns the URL of an MP3 clip for text, and whether the
// fallback voice was used. An empty URL means no audio is available.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (audioURL string, fallbackUsed bool) {
	if text == "" || !s.store.Enabled() {
		return "", false
	}

	if cached, err := s.cache.Get(ctx, text); err != nil {
		s.logger.Warn("audio cache lookup failed", "error", err)
	} else if cached != "" {
		return cached, false
	}

	if url := s.attempt(ctx, s.primary, text); url != "" {
		return url, false
	}
	if url := s.attempt(ctx, s.fallback, text); url != "" {
		return url, true
	}
	return "", true
}

func (s *Synthesizer) attempt(ctx context.Context, provider Provider, text string) string {
	if provider == nil {
		return ""
	}

	audio, err := provider.Synthesize(ctx, text)
	if err != nil {
		s.metrics.ObserveSynthesis(provider.Name(), "error")
		s.logger.Warn("speech synthesis failed", "provider", provider.Name(), "error", err)
		return ""
	}

	url, err := s.store.Put(ctx, audio)
	if err != nil {
		s.metrics.ObserveSynthesis(provider.Name(), "store_error")
		s.logger.Warn("audio upload failed", "provider", provider.Name(), "error", err)
		return ""
	}
	s.metrics.ObserveSynthesis(provider.Name(), "ok")

	if err := s.cache.Set(ctx, text, url); err != nil {
		s.logger.Warn("audio cache write failed", "error", err)
	}
	return url
}
