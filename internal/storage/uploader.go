package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	appconfig "github.com/Spyboss/tmr-tradinglanka-sub000/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrDisabled = errors.New("object storage is not configured")

// Uploader puts files into the S3-compatible bucket (Cloudflare R2 in
// production) and returns public URLs for them.
type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
	enabled   bool
}

func NewUploader(ctx context.Context, cfg *appconfig.Config) (*Uploader, error) {
	if !cfg.Storage.Enabled {
		return &Uploader{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("configure storage client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
	})

	return &Uploader{
		client:    client,
		bucket:    cfg.Storage.Bucket,
		publicURL: strings.TrimRight(cfg.Storage.PublicURL, "/"),
		enabled:   true,
	}, nil
}

// Enabled reports whether uploads are configured
func (u *Uploader) Enabled() bool {
	return u.enabled
}

// Upload stores data under key and returns its public URL
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if !u.enabled {
		return "", ErrDisabled
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return u.publicURL + "/" + key, nil
}
