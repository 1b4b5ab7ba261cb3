package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/log"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 2 * time.Minute

var ErrMissingBucket = errors.New("output: S3 bucket not configured")

var logger = log.New("output")

// S3Config describes where rendered frames are uploaded
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Optional, for S3 compatible stores
	AccessKey string // Optional, the default credential chain is used when empty
	SecretKey string
}

// S3ConfigFromEnv reads S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY
func S3ConfigFromEnv() S3Config {
	return S3Config{
		Bucket:    os.Getenv("S3_BUCKET"),
		Region:    os.Getenv("S3_REGION"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	}
}

// S3Sink uploads pictures as PNG objects
type S3Sink struct {
	bucket string
	client s3iface.S3API
}

// NewS3Sink opens an AWS session for the configured bucket
func NewS3Sink(cfg S3Config) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}

	awsConfig := &aws.Config{}
	if cfg.Region != "" {
		awsConfig.Region = aws.String(cfg.Region)
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("create S3 session: %w", err)
	}
	return NewS3SinkWithClient(cfg.Bucket, s3.New(sess)), nil
}

// NewS3SinkWithClient uploads through an existing client
func NewS3SinkWithClient(bucket string, client s3iface.S3API) *S3Sink {
	return &S3Sink{bucket: bucket, client: client}
}

// Upload encodes the picture as PNG and stores it under key
func (s *S3Sink) Upload(ctx context.Context, pic *core.Picture, key string) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, pic.ToRGBA(), imaging.PNG); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(buf.Len())
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	logger.Infof("uploaded s3://%s/%s (%d bytes)", s.bucket, key, size)
	return nil
}
