package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"oasis/config"
	"oasis/infras/otel"
	"oasis/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// ImageStore resolves stored cabin image references to fetchable URLs.
// Image objects are uploaded by the back-office application; this service
// only ever reads them.
type ImageStore interface {
	ImageURL(ctx context.Context, objectKey string) (url string, err error)
}

type s3Impl struct {
	presigner *s3.PresignClient
	config    *config.Config
	otel      otel.Otel
}

// ImageURL returns a presigned GET URL for the given object key. References
// that are already absolute URLs are passed through untouched.
func (svc *s3Impl) ImageURL(ctx context.Context, objectKey string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".ImageURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	if strings.Contains(objectKey, "://") {
		return objectKey, nil
	}

	bucketName := svc.config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucketName,
	})

	expire := time.Duration(svc.config.External.S3.PresignExpireMin) * time.Minute

	request, err := svc.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expire))
	if err != nil {
		log.Error().Err(err).Str("objectKey", objectKey).Msg("failed to presign image URL")

		return constant.Empty, fmt.Errorf("failed to presign image URL: %w", err)
	}

	return request.URL, nil
}

func New(config *config.Config, otel otel.Otel) ImageStore {
	endpoint := config.External.S3.APIEndpoint
	accessKeyID := config.External.S3.AccessKeyID
	secretAccessKey := config.External.S3.SecretAccessKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		presigner: s3.NewPresignClient(s3Client),
		config:    config,
		otel:      otel,
	}
}
