package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const translateTTSBaseURL = "https://translate.google.com/translate_tts"

// TranslateTTSClient uses the unauthenticated Google Translate speech
// endpoint as a free fallback voice.
type TranslateTTSClient struct {
	baseURL    string
	lang       string
	httpClient *http.Client
}

// NewTranslateTTSClient creates a fallback client speaking the given
// language code.
func NewTranslateTTSClient(lang string, timeout time.Duration) *TranslateTTSClient {
	if lang == "" {
		lang = "hi"
	}
	if timeout <= 0 {
		timeout = defaultSynthesisTimeout
	}
	return &TranslateTTSClient{
		baseURL: translateTTSBaseURL,
		lang:    lang,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *TranslateTTSClient) Name() string { return "gtts" }

// Synthesize renders text as MP3 audio via the translate endpoint.
func (c *TranslateTTSClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", c.lang)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("speech: build translate tts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech: translate tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech: translate tts status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("speech: read translate tts audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("speech: translate tts returned empty audio")
	}
	return audio, nil
}
