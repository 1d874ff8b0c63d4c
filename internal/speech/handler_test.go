package speech

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAudioRouter(store *AudioStore) http.Handler {
	h := NewHandler(store, nil)
	r := chi.NewRouter()
	r.Get("/static/audio/{name}", h.ServeAudio)
	return r
}

func TestServeAudio(t *testing.T) {
	s3Client := newFakeS3()
	s3Client.objects["audio/clip.mp3"] = []byte("mp3-bytes")
	router := newAudioRouter(NewAudioStore(s3Client, "moodmate-audio"))

	req := httptest.NewRequest(http.MethodGet, "/static/audio/clip.mp3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "mp3-bytes", rec.Body.String())
}

func TestServeAudioNotFound(t *testing.T) {
	router := newAudioRouter(NewAudioStore(newFakeS3(), "moodmate-audio"))

	req := httptest.NewRequest(http.MethodGet, "/static/audio/missing.mp3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeAudioRejectsTraversal(t *testing.T) {
	router := newAudioRouter(NewAudioStore(newFakeS3(), "moodmate-audio"))

	req := httptest.NewRequest(http.MethodGet, "/static/audio/..%2Fsecret", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
