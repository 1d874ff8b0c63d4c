package speech

import "context"

// Provider turns text into spoken audio (MP3 bytes).
type Provider interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Name() string
}
