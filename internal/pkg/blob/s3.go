package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Options selects the bucket/key target and optional static credentials.
// When AccessKeyID is empty the SDK default chain (instance role, env) is
// used.
type S3Options struct {
	Region          string
	Bucket          string
	Key             string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Object stores the document as a single object. A PutObject either fully
// succeeds or fails; there is no partially visible state, which is the
// atomicity guarantee the stores rely on.
type S3Object struct {
	client *s3.Client
	bucket string
	key    string
}

func NewS3Object(ctx context.Context, opts S3Options) (*S3Object, error) {
	if opts.Bucket == "" || opts.Key == "" {
		return nil, errors.New("blob: s3 bucket and key are required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("blob: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Object{client: client, bucket: opts.Bucket, key: opts.Key}, nil
}

func (s *S3Object) Load(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noKey) || errors.As(err, &notFound) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("blob: s3 get %s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("blob: s3 read body: %w", err)
	}
	return data, nil
}

func (s *S3Object) Save(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("blob: s3 put %s/%s: %w", s.bucket, s.key, err)
	}
	return nil
}
