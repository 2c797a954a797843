// Package s3media implements the media uploader port on S3 or any
// S3-compatible endpoint.
package s3media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofrs/uuid"

	"murmur/internal/config"
	"murmur/internal/ports/media"
)

// Uploader stores images in a single bucket under random keys.
type Uploader struct {
	uploader  *manager.Uploader
	bucket    string
	publicURL string
}

// New builds the S3 client from the app config. A custom endpoint switches
// the client to path-style addressing so MinIO-style deployments work.
func New(ctx context.Context, cfg *config.Config) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = awsv2.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		uploader:  manager.NewUploader(client),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
	}, nil
}

// UploadBatch uploads the files one by one, preserving input order in the
// returned URLs. The first failure aborts the batch; files already stored
// are not cleaned up.
func (u *Uploader) UploadBatch(ctx context.Context, files []media.File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		key := objectKey(f.Name)
		out, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:      awsv2.String(u.bucket),
			Key:         awsv2.String(key),
			Body:        bytes.NewReader(f.Data),
			ContentType: awsv2.String(f.ContentType),
		})
		if err != nil {
			return nil, fmt.Errorf("uploading %s: %w", f.Name, err)
		}
		urls = append(urls, u.urlFor(key, out.Location))
	}
	return urls, nil
}

func (u *Uploader) urlFor(key, location string) string {
	if u.publicURL != "" {
		return u.publicURL + "/" + key
	}
	return location
}

func objectKey(name string) string {
	return uuid.Must(uuid.NewV4()).String() + strings.ToLower(path.Ext(name))
}

var _ media.Uploader = (*Uploader)(nil)
