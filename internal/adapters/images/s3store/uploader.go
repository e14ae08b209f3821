package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const keyPrefix = "pets/"

type Config struct {
	Bucket       string
	Region       string
	Endpoint     string // vacío = AWS; con valor = MinIO u otro compatible
	AccessKey    string
	SecretKey    string
	PublicURL    string // base de las URLs devueltas; vacío = se arma con endpoint/bucket
	UsePathStyle bool
}

// putObjectAPI es lo único que usamos de *s3.Client.
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader implementa images.Uploader sobre S3.
type Uploader struct {
	client    putObjectAPI
	bucket    string
	publicURL string
}

func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("s3 bucket is required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newUploader(client, cfg.Bucket, publicBase(cfg, region)), nil
}

func newUploader(client putObjectAPI, bucket, publicURL string) *Uploader {
	return &Uploader{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (u *Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	key := keyPrefix + name

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(http.DetectContentType(data)),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return u.publicURL + "/" + key, nil
}

func publicBase(cfg Config, region string) string {
	if cfg.PublicURL != "" {
		return cfg.PublicURL
	}
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
}
