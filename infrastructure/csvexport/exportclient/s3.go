package exportclient

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/organic-insights-api/internal/config"
)

// S3Client lê os CSVs exportados de um bucket S3 ou compatível
type S3Client struct {
	client        *s3.Client
	bucket        string
	prefix        string
	postsPath     string
	followersPath string
}

// NewS3Client monta o cliente a partir de DATASET_BASE_URL no formato s3://bucket/prefixo.
// Sem chaves configuradas usa a cadeia padrão de credenciais da AWS.
func NewS3Client(ctx context.Context, dataset config.Dataset) (*S3Client, error) {
	bucket, prefix, err := parseS3URL(dataset.BaseURL)
	if err != nil {
		return nil, err
	}

	region := dataset.S3.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if dataset.S3.AccessKey != "" && dataset.S3.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(dataset.S3.AccessKey, dataset.S3.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração da AWS: %w", err)
	}
	awsCfg.HTTPClient = newHTTPClient(dataset.FetchTimeout)

	var s3Opts []func(*s3.Options)
	if dataset.S3.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(dataset.S3.Endpoint)
			o.UsePathStyle = true // MinIO e afins só aceitam path style
		})
	}

	logrus.WithFields(logrus.Fields{
		"bucket":   bucket,
		"prefix":   prefix,
		"region":   region,
		"endpoint": dataset.S3.Endpoint,
	}).Info("Cliente S3 do dataset inicializado")

	return &S3Client{
		client:        s3.NewFromConfig(awsCfg, s3Opts...),
		bucket:        bucket,
		prefix:        prefix,
		postsPath:     dataset.PostsPath,
		followersPath: dataset.FollowersPath,
	}, nil
}

func parseS3URL(base string) (string, string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", "", fmt.Errorf("DATASET_BASE_URL inválida: %w", err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("DATASET_BASE_URL deve ter o formato s3://bucket/prefixo: %s", base)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}

func (c *S3Client) key(assetPath string) string {
	name := strings.TrimLeft(assetPath, "/")
	if c.prefix == "" {
		return name
	}
	return c.prefix + "/" + name
}

func (c *S3Client) FetchPosts(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, c.postsPath)
}

func (c *S3Client) FetchFollowers(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, c.followersPath)
}

func (c *S3Client) fetch(ctx context.Context, assetPath string) ([]byte, error) {
	key := c.key(assetPath)
	target := "s3://" + c.bucket + "/" + key

	logrus.WithField("object", target).Debug("Buscando csv exportado no S3")

	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(ErrFetchFailed, "%s: %v", target, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrFetchFailed, "%s: %v", target, err)
	}
	return data, nil
}
