package source

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	crerr "github.com/cockroachdb/errors"
)

type S3FetcherConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Fetcher reads exports stored as objects, addressed as s3://bucket/key.
// A custom endpoint switches to path-style addressing for R2 and MinIO.
type S3Fetcher struct {
	client objectGetter
}

func NewS3Fetcher(ctx context.Context, cfg S3FetcherConfig) (*S3Fetcher, error) {
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "auto"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	sdkCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "load aws sdk config")
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Fetcher{client: client}, nil
}

func (f *S3Fetcher) FetchURI(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := parseS3URI(uri)
	if err != nil {
		return nil, err
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, crerr.Wrapf(err, "get object bucket=%s key=%s", bucket, key)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(out.Body, maxSourceBytes))
	if err != nil {
		return nil, crerr.Wrapf(err, "read object bucket=%s key=%s", bucket, key)
	}
	return raw, nil
}

func parseS3URI(uri string) (string, string, error) {
	parsed, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return "", "", crerr.Wrapf(err, "parse s3 uri %q", uri)
	}
	if !strings.EqualFold(parsed.Scheme, "s3") {
		return "", "", crerr.Newf("not an s3 uri: %q", uri)
	}

	bucket := parsed.Host
	key := strings.TrimPrefix(parsed.Path, "/")
	if bucket == "" || key == "" {
		return "", "", crerr.Newf("s3 uri must name a bucket and key: %q", uri)
	}
	return bucket, key, nil
}
