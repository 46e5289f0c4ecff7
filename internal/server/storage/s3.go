package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}
)

// S3MirrorConfig holds the settings for the optional object-storage mirror.
// An empty Bucket disables mirroring.
type S3MirrorConfig struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// S3Mirror keeps a cold copy of completed uploads in an S3-compatible
// bucket. It is strictly best-effort: the disk store stays authoritative and
// downloads never read from the mirror.
type S3Mirror struct {
	cfg S3MirrorConfig
}

// NewS3Mirror constructs a mirror from config.
func NewS3Mirror(cfg S3MirrorConfig) *S3Mirror {
	return &S3Mirror{cfg: cfg}
}

// Enabled reports whether a bucket is configured.
func (m *S3Mirror) Enabled() bool {
	return m.cfg.Bucket != ""
}

func (m *S3Mirror) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(m.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			m.cfg.RootUser,
			m.cfg.RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if m.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(m.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return client, nil
}

// Put copies one stored file to the bucket under key.
func (m *S3Mirror) Put(ctx context.Context, key string, body io.Reader) error {
	client, err := m.getClient(ctx)
	if err != nil {
		return err
	}

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: &m.cfg.Bucket,
		Key:    &key,
		Body:   body,
	})
	return err
}

// Delete removes the mirrored copy for key.
func (m *S3Mirror) Delete(ctx context.Context, key string) error {
	client, err := m.getClient(ctx)
	if err != nil {
		return err
	}

	_, err = deleteObject(client, ctx, &s3.DeleteObjectInput{
		Bucket: &m.cfg.Bucket,
		Key:    &key,
	})
	return err
}
