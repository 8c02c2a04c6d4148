package storage

import (
	"bytes"
	"context"
	"fmt"

	"cotizador_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3ArtifactStore stores rendered quotation documents in S3 and returns the
// region-qualified object URL as the locator recorded on the quotation.
type S3ArtifactStore struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IArtifactStore = (*S3ArtifactStore)(nil)

func NewS3ArtifactStore(client *s3.Client, bucket, region string) *S3ArtifactStore {
	return &S3ArtifactStore{client: client, bucket: bucket, region: region}
}

func (s *S3ArtifactStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("putting s3 object %s/%s: %w", s.bucket, key, err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	log.Debug().Str("bucket", s.bucket).Str("key", key).Int("size", len(body)).Msg("artifact stored")
	return url, nil
}
