// Package s3 turns photo storage keys into presigned S3 GET URLs.
package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultURLTTL is how long a presigned photo URL stays valid.
const DefaultURLTTL = 15 * time.Minute

var ErrBucketIsRequired = errors.New("s3 bucket is required")

// Config selects the bucket and credentials. Empty credentials fall back to
// the default AWS credential chain.
type Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	URLTTL          time.Duration
}

// PresignResolver implements ports.PhotoURLResolver with SigV4 presigned URLs.
type PresignResolver struct {
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration
}

func NewPresignResolver(ctx context.Context, cfg Config) (*PresignResolver, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketIsRequired
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	ttl := cfg.URLTTL
	if ttl <= 0 {
		ttl = DefaultURLTTL
	}

	return &PresignResolver{
		presigner: s3.NewPresignClient(s3.NewFromConfig(awsConfig)),
		bucket:    cfg.Bucket,
		ttl:       ttl,
	}, nil
}

// ResolveURL presigns a GET for key. An empty key resolves to an empty URL.
func (r *PresignResolver) ResolveURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	request, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = r.ttl
	})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return request.URL, nil
}

// StaticResolver joins keys onto a fixed base URL. It serves local setups
// without a bucket, where photos are exposed by a plain file server.
type StaticResolver struct {
	BaseURL string
}

func (r StaticResolver) ResolveURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if r.BaseURL == "" {
		return key, nil
	}
	return url.JoinPath(r.BaseURL, strings.Split(key, "/")...)
}
