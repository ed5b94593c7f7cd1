package s3

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// defaultRegion keeps presigning local: with a region set the client does
// not have to ask the server for the bucket location.
const defaultRegion = "us-east-1"

// ImageResolver turns the object keys stored on properties into presigned
// MinIO URLs. References that already are http(s) URLs are returned as is.
type ImageResolver struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
	logger *logger.Logger
}

func NewImageResolver(endpoint, accessKey, secretKey, bucketName string, useSSL bool, ttl time.Duration, log *logger.Logger) (*ImageResolver, error) {
	log.Info("Initializing S3 MinIO image resolver",
		zap.String("endpoint", endpoint),
		zap.String("bucket", bucketName),
		zap.Bool("use_ssl", useSSL),
	)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: defaultRegion,
	})
	if err != nil {
		log.Error("S3 image resolver: failed to create MinIO client", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	return &ImageResolver{
		client: client,
		bucket: bucketName,
		ttl:    ttl,
		logger: log.Named("ImageResolver"),
	}, nil
}

// CheckBucket verifies the bucket exists. It never creates it.
func (r *ImageResolver) CheckBucket(ctx context.Context) error {
	exists, err := r.client.BucketExists(ctx, r.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", r.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", r.bucket)
	}
	return nil
}

func IsAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func (r *ImageResolver) ResolveURL(ctx context.Context, ref string) (string, error) {
	if IsAbsoluteURL(ref) {
		return ref, nil
	}

	key := strings.TrimPrefix(ref, "/")
	u, err := r.client.PresignedGetObject(ctx, r.bucket, key, r.ttl, url.Values{})
	if err != nil {
		r.logger.Error("PresignedGetObject failed", zap.String("bucket", r.bucket), zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to presign object %s in bucket %s: %w", key, r.bucket, err)
	}
	r.logger.Debug("Presigned image URL", zap.String("key", key), zap.Duration("ttl", r.ttl))
	return u.String(), nil
}
