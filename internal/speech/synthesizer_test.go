package speech

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name  string
	audio []byte
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	f.calls++
	return f.audio, f.err
}

type fakeS3 struct {
	objects map[string][]byte
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, _ := io.ReadAll(params.Body)
	f.objects[*params.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*params.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(data)))}, nil
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client, time.Hour)
}

func TestSynthesizePrimarySucceeds(t *testing.T) {
	primary := &fakeProvider{name: "elevenlabs", audio: []byte("a")}
	fallback := &fakeProvider{name: "gtts", audio: []byte("b")}
	store := NewAudioStore(newFakeS3(), "moodmate-audio")

	s := NewSynthesizer(primary, fallback, store, nil, nil, nil)
	url, usedFallback := s.Synthesize(context.Background(), "hello")

	assert.True(t, strings.HasPrefix(url, "/static/audio/"))
	assert.True(t, strings.HasSuffix(url, ".mp3"))
	assert.False(t, usedFallback)
	assert.Equal(t, 0, fallback.calls)
}

func TestSynthesizeFallsBack(t *testing.T) {
	primary := &fakeProvider{name: "elevenlabs", err: errors.New("quota")}
	fallback := &fakeProvider{name: "gtts", audio: []byte("b")}
	store := NewAudioStore(newFakeS3(), "moodmate-audio")

	s := NewSynthesizer(primary, fallback, store, nil, nil, nil)
	url, usedFallback := s.Synthesize(context.Background(), "hello")

	assert.NotEmpty(t, url)
	assert.True(t, usedFallback)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestSynthesizeBothFail(t *testing.T) {
	primary := &fakeProvider{name: "elevenlabs", err: errors.New("quota")}
	fallback := &fakeProvider{name: "gtts", err: errors.New("blocked")}
	store := NewAudioStore(newFakeS3(), "moodmate-audio")

	s := NewSynthesizer(primary, fallback, store, nil, nil, nil)
	url, usedFallback := s.Synthesize(context.Background(), "hello")

	assert.Empty(t, url)
	assert.True(t, usedFallback)
}

func TestSynthesizeNoStore(t *testing.T) {
	primary := &fakeProvider{name: "elevenlabs", audio: []byte("a")}

	s := NewSynthesizer(primary, nil, NewAudioStore(nil, ""), nil, nil, nil)
	url, usedFallback := s.Synthesize(context.Background(), "hello")

	assert.Empty(t, url)
	assert.False(t, usedFallback)
	assert.Equal(t, 0, primary.calls)
}

func TestSynthesizeCacheHitSkipsProviders(t *testing.T) {
	primary := &fakeProvider{name: "elevenlabs", audio: []byte("a")}
	store := NewAudioStore(newFakeS3(), "moodmate-audio")
	cache := newTestCache(t)

	s := NewSynthesizer(primary, nil, store, cache, nil, nil)

	first, _ := s.Synthesize(context.Background(), "hello")
	require.NotEmpty(t, first)
	require.Equal(t, 1, primary.calls)

	second, usedFallback := s.Synthesize(context.Background(), "hello")
	assert.Equal(t, first, second)
	assert.False(t, usedFallback)
	assert.Equal(t, 1, primary.calls)
}

func TestSynthesizeStoreErrorTriesFallback(t *testing.T) {
	primary := &fakeProvider{name: "elevenlabs", audio: []byte("a")}
	s3Client := newFakeS3()
	s3Client.putErr = errors.New("access denied")
	store := NewAudioStore(s3Client, "moodmate-audio")

	s := NewSynthesizer(primary, nil, store, nil, nil, nil)
	url, usedFallback := s.Synthesize(context.Background(), "hello")

	assert.Empty(t, url)
	assert.True(t, usedFallback)
}
