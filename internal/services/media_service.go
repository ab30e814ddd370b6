package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"inzider/internal/infra"
	"inzider/pkg/utils"
)

type MediaObject struct {
	Key string
	URL string
}

// StoredMedia is what the proxy route streams back to the browser.
type StoredMedia struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// MediaServiceInterface proxies uploads and deletes to the object
// store synchronously; there is no multipart or resumable handling.
type MediaServiceInterface interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (*MediaObject, error)
	Get(ctx context.Context, key string) (*StoredMedia, error)
	Delete(ctx context.Context, key string) error
}

type MediaService struct {
	s3  *infra.S3Deps
	log *zap.Logger
}

func NewMediaService(s3Deps *infra.S3Deps, log *zap.Logger) MediaServiceInterface {
	return &MediaService{s3: s3Deps, log: log}
}

// Upload stores the file under a random unique key, preserving the
// original extension so content sniffing stays cheap on the way out.
func (s *MediaService) Upload(ctx context.Context, filename, contentType string, body io.Reader) (*MediaObject, error) {
	random, err := utils.GenerateAccessKey(16)
	if err != nil {
		return nil, fmt.Errorf("generate media key: %w", err)
	}
	key := random + path.Ext(filename)

	_, err = s.s3.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.Config.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Error("s3 upload", zap.String("key", key), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &MediaObject{Key: key, URL: s.s3.PublicURL(key)}, nil
}

func (s *MediaService) Get(ctx context.Context, key string) (*StoredMedia, error) {
	out, err := s.s3.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.s3.Config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.log.Warn("s3 get", zap.String("key", key), zap.Error(err))
		return nil, utils.ErrNotFound
	}

	media := &StoredMedia{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
	}
	if out.ContentLength != nil {
		media.ContentLength = *out.ContentLength
	}
	return media, nil
}

func (s *MediaService) Delete(ctx context.Context, key string) error {
	_, err := s.s3.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3.Config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.log.Error("s3 delete", zap.String("key", key), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}
