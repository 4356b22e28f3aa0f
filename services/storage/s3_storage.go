package storage

// assumes you have the following environment variables setup for AWS session creation
// AWS_SDK_LOAD_CONFIG=1
// AWS_ACCESS_KEY=XXXXXXXXXX
// AWS_SECRET_ACCESS_KEY=XXXXXXXX
// AWS_REGION=ap-south-1

import (
	"bytes"
	"context"

	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// ObjectStore is what the document stage needs from object storage. Tests
// swap in an in-memory implementation.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

type S3Storage struct {
	bucket string
	svc    *s3.S3
}

func NewS3Storage(config *utils.Config) *S3Storage {
	// Create Session and assign AccessKeyID and SecretAccessKey
	sess := session.Must(session.NewSession(
		&aws.Config{
			Region:      aws.String(config.AWSRegion),
			Credentials: credentials.NewStaticCredentials(config.AWSAccessKeyID, config.AWSSecretAccessKey, ""),
		},
	))

	return &S3Storage{
		bucket: config.DocumentsBucket,
		svc:    s3.New(sess),
	}
}

func (s *S3Storage) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}
