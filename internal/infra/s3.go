package infra

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the AWS endpoint for S3-compatible stores
	// (MinIO, R2). Empty means real S3.
	Endpoint string
	// PublicBaseURL is the prefix for the URL returned to clients after
	// an upload. Defaults to the virtual-hosted S3 URL when empty.
	PublicBaseURL string
}

// S3Deps bundles the client, the upload manager and the bucket so a
// single fx provider can hand storage to the media service.
type S3Deps struct {
	Client   *s3.Client
	Uploader *manager.Uploader
	Config   S3Config
}

func NewS3(ctx context.Context, cfg S3Config) (*S3Deps, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Deps{
		Client:   client,
		Uploader: manager.NewUploader(client),
		Config:   cfg,
	}, nil
}

// PublicURL builds the URL stored on content records and returned to
// the browser after an upload.
func (d *S3Deps) PublicURL(key string) string {
	if d.Config.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", d.Config.PublicBaseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", d.Config.Bucket, d.Config.Region, key)
}
