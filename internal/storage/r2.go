package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/angeloszaimis/storagecheck/internal/resolver"
)

// R2 accepts "auto" as the signing region.
const r2Region = "auto"

// ErrNotConfigured is returned when required credentials are missing.
var ErrNotConfigured = errors.New("storage backend is not configured")

// R2Config holds the settings needed to talk to an R2 bucket.
type R2Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
	Region          string
}

// R2ConfigFrom reads the R2 settings from src, applying the default bucket.
func R2ConfigFrom(src resolver.Source) R2Config {
	return R2Config{
		Endpoint:        resolver.Value(src, resolver.KeyR2Endpoint),
		AccessKeyID:     resolver.Value(src, resolver.KeyR2AccessKeyID),
		SecretAccessKey: resolver.Value(src, resolver.KeyR2SecretKey),
		Bucket:          resolver.BucketName(src),
		PublicURL:       resolver.Value(src, resolver.KeyR2PublicURL),
		Region:          r2Region,
	}
}

// Validate reports missing credentials as ErrNotConfigured and rejects
// endpoints that are not absolute http(s) URLs.
func (c R2Config) Validate() error {
	if c.Endpoint == "" || c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return ErrNotConfigured
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Endpoint, is.URL, validation.By(validateScheme)),
		validation.Field(&c.PublicURL, is.URL),
		validation.Field(&c.Bucket, validation.Required),
	)
}

// R2Client wraps an S3 client bound to a single bucket.
type R2Client struct {
	client *s3.Client
	bucket string
}

// NewR2Client builds an S3 client for the R2 endpoint in cfg using static
// credentials and path-style addressing.
func NewR2Client(ctx context.Context, cfg R2Config) (*R2Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid R2 config: %w", err)
	}

	region := cfg.Region
	if region == "" {
		region = r2Region
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &R2Client{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// S3 returns the underlying S3 client.
func (c *R2Client) S3() *s3.Client {
	return c.client
}

// Bucket returns the bucket this client writes to.
func (c *R2Client) Bucket() string {
	return c.bucket
}

// PublicURL returns the URL an object stored under key is served from. The
// public URL override wins; otherwise the path-style endpoint URL is used.
func PublicURL(cfg R2Config, key string) string {
	key = strings.TrimLeft(key, "/")
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/") + "/" + key
	}
	return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket + "/" + key
}

func validateScheme(value interface{}) error {
	raw, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}

	if u.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}
