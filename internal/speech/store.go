package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3API is the subset of the S3 client used by AudioStore.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// AudioStore keeps synthesized clips in S3 and serves them back by name.
// If bucket is empty all operations are no-ops.
type AudioStore struct {
	bucket   string
	s3Client S3API
}

// NewAudioStore creates an audio store for the given bucket.
func NewAudioStore(s3Client S3API, bucket string) *AudioStore {
	return &AudioStore{bucket: bucket, s3Client: s3Client}
}

// Enabled reports whether a bucket is configured.
func (s *AudioStore) Enabled() bool {
	return s != nil && s.bucket != "" && s.s3Client != nil
}

// Put uploads one MP3 clip under a fresh name and returns the public URL
// path clients fetch it from.
func (s *AudioStore) Put(ctx context.Context, audio []byte) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("speech: audio store not configured")
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ".mp3"
	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String("audio/" + name),
		Body:        bytes.NewReader(audio),
		ContentType: aws.String("audio/mpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("speech: s3 put audio %s: %w", name, err)
	}
	return "/static/audio/" + name, nil
}

// Get fetches a stored clip by its file name.
func (s *AudioStore) Get(ctx context.Context, name string) ([]byte, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("speech: audio store not configured")
	}

	resp, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String("audio/" + name),
	})
	if err != nil {
		return nil, fmt.Errorf("speech: s3 get audio %s: %w", name, err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("speech: read audio %s: %w", name, err)
	}
	return audio, nil
}
