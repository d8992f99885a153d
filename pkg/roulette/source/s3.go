package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds optional connection settings for S3-compatible storage.
// With everything empty the default AWS credential chain is used.
type S3Config struct {
	// Endpoint overrides the service URL (e.g., a Cloudflare R2 account endpoint).
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// S3Source reads a workbook object from a bucket.
type S3Source struct {
	Bucket string
	Key    string
	cfg    S3Config

	mu     sync.Mutex
	client *s3.Client
}

// NewS3Source parses an s3://bucket/key URL.
func NewS3Source(location string, cfg S3Config) (*S3Source, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 location %q (want s3://bucket/key)", location)
	}
	return &S3Source{Bucket: bucket, Key: key, cfg: cfg}, nil
}

func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.Bucket,
		Key:    &s.Key,
	})
	if err != nil {
		return nil, err
	}

	return out.Body, nil
}

// getClient builds the client on first use. Concurrent loads share it.
func (s *S3Source) getClient(ctx context.Context) (*s3.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	region := s.cfg.Region
	if region == "" && s.cfg.Endpoint != "" {
		region = "auto"
	}

	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if s.cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				s.cfg.AccessKey,
				s.cfg.SecretKey,
				"",
			),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	s.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return s.client, nil
}

func (s *S3Source) Name() string {
	return path.Base(s.Key)
}

func (s *S3Source) String() string {
	return "s3://" + s.Bucket + "/" + s.Key
}
