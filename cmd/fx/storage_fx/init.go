package storage_fx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"inzider/internal/infra"
	"inzider/internal/services"
)

var Module = fx.Provide(
	provideS3, provideMediaService)

func provideS3() (*infra.S3Deps, error) {
	cfg := infra.S3Config{
		Region:          os.Getenv("S3_REGION"),
		Bucket:          os.Getenv("S3_BUCKET"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		Endpoint:        os.Getenv("S3_ENDPOINT"),
		PublicBaseURL:   os.Getenv("S3_PUBLIC_BASE_URL"),
	}
	return infra.NewS3(context.Background(), cfg)
}

func provideMediaService(s3Deps *infra.S3Deps, log *zap.Logger) services.MediaServiceInterface {
	return services.NewMediaService(s3Deps, log)
}
