package store

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const mirrorPrefix = "generated_images"

// S3Mirror copies stored images into an S3 bucket so generated results
// survive ephemeral-filesystem restarts. It is strictly best-effort; the
// store never reads back from it.
type S3Mirror struct {
	client *s3.Client
	bucket string
}

// NewS3Mirror initializes the S3 client from the default credential chain.
func NewS3Mirror(ctx context.Context, region, bucket string) (*S3Mirror, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	log.Println("S3 mirror initialized")
	return &S3Mirror{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// Upload puts one image under the mirror prefix.
func (m *S3Mirror) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	objectKey := fmt.Sprintf("%s/%s", mirrorPrefix, key)

	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %v", err)
	}
	return nil
}
