package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/repository"
)

// Media keys embed a fresh UUID and are never overwritten.
const immutableCacheControl = "public, max-age=31536000, immutable"

// minioClient is the subset of *minio.Client used here.
type minioClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

type ClientConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicBaseURL is the origin clients download media from, e.g.
	// "https://cdn.example.com". Defaults to the endpoint itself.
	PublicBaseURL string
}

func (c ClientConfig) baseURL() string {
	if c.PublicBaseURL != "" {
		return c.PublicBaseURL
	}
	if c.UseSSL {
		return "https://" + c.Endpoint
	}
	return "http://" + c.Endpoint
}

// Client stores media in a single MinIO bucket.
type Client struct {
	client  minioClient
	bucket  string
	baseURL string
}

var _ repository.ObjectStorage = (*Client)(nil)

// NewClient connects to MinIO and fails if the bucket is missing.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return newClientWithMinioClient(ctx, mc, cfg.Bucket, cfg.baseURL())
}

func newClientWithMinioClient(ctx context.Context, mc minioClient, bucket, baseURL string) (*Client, error) {
	c := &Client{
		client:  mc,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	if err := c.checkBucket(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) checkBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", repository.ErrBucketNotFound, c.bucket)
	}
	return nil
}

func (c *Client) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	opts := minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: immutableCacheControl,
	}
	if _, err := c.client.PutObject(ctx, c.bucket, key, reader, size, opts); err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

// Delete stats the object first because RemoveObject succeeds for missing
// keys, and callers need to tell the two apart.
func (c *Client) Delete(ctx context.Context, key string) error {
	if _, err := c.client.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return fmt.Errorf("%w: %s", repository.ErrObjectNotFound, key)
		}
		return fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// URL returns {baseURL}/{bucket}/{key}.
func (c *Client) URL(key string) string {
	return c.baseURL + "/" + path.Join(c.bucket, key)
}

// Ping is used by the health check.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.checkBucket(ctx); err != nil {
		return fmt.Errorf("failed to ping minio: %w", err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
