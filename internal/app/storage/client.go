package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"chatserver/internal/pkg/logx"
)

// maxDeleteBatch is the S3 limit of keys per DeleteObjects call.
const maxDeleteBatch = 1000

// s3Client implements the StorageService interface, handling interactions with S3-compatible storage.
type s3Client struct {
	cfg      ServiceConfig
	s3Client *s3.Client
	uploader *manager.Uploader
	logger   zerolog.Logger
}

// newS3Client initializes the S3 client using a custom configuration that supports S3-compatible endpoints.
func newS3Client(ctx context.Context, cfg ServiceConfig) (*s3Client, error) {
	logger := logx.Component("Storage")

	sdkCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load AWS SDK config")
		return nil, errors.New("failed to initialize S3 client configuration")
	}

	// Create S3 Client with Custom Endpoint Resolver.
	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &s3Client{
		cfg:      cfg,
		s3Client: client,
		uploader: manager.NewUploader(client),
		logger:   logger,
	}, nil
}

// Upload streams body to the bucket under key.
func (c *s3Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.cfg.S3BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("S3 upload failed")
		return "", errors.New("failed to upload file to S3")
	}

	return c.PublicURL(key), nil
}

// Delete removes keys from the bucket, batching into DeleteObjects calls.
func (c *s3Client) Delete(ctx context.Context, keys ...string) error {
	keys = lo.Uniq(lo.Compact(keys))

	switch len(keys) {
	case 0:
		return nil
	case 1:
		_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(c.cfg.S3BucketName),
			Key:    aws.String(keys[0]),
		})
		if err != nil {
			c.logger.Error().Err(err).Str("key", keys[0]).Msg("S3 delete failed")
			return errors.New("failed to delete file from S3")
		}
		return nil
	}

	for _, batch := range lo.Chunk(keys, maxDeleteBatch) {
		objects := make([]types.ObjectIdentifier, 0, len(batch))
		for _, k := range batch {
			objects = append(objects, types.ObjectIdentifier{Key: aws.String(k)})
		}

		out, err := c.s3Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(c.cfg.S3BucketName),
			Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
		})
		if err != nil {
			c.logger.Error().Err(err).Int("count", len(batch)).Msg("S3 batch delete failed")
			return errors.New("failed to delete files from S3")
		}

		for _, e := range out.Errors {
			c.logger.Warn().
				Str("key", aws.ToString(e.Key)).
				Str("code", aws.ToString(e.Code)).
				Msg("S3 refused to delete object")
		}
	}

	return nil
}

// PublicURL joins the public base URL and key.
func (c *s3Client) PublicURL(key string) string {
	return strings.TrimRight(c.cfg.PublicBaseURL, "/") + "/" + strings.TrimLeft(key, "/")
}
