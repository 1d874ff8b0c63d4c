package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateTTSSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "hi", q.Get("tl"))
		assert.Equal(t, "tw-ob", q.Get("client"))
		assert.Equal(t, "namaste", q.Get("q"))
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	client := NewTranslateTTSClient("hi", time.Second)
	client.baseURL = srv.URL

	audio, err := client.Synthesize(context.Background(), "namaste")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
}

func TestTranslateTTSDefaultLang(t *testing.T) {
	client := NewTranslateTTSClient("", time.Second)
	assert.Equal(t, "hi", client.lang)
}

func TestTranslateTTSErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewTranslateTTSClient("hi", time.Second)
	client.baseURL = srv.URL

	_, err := client.Synthesize(context.Background(), "namaste")
	assert.Error(t, err)
}
