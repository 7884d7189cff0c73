package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rpupo63/studio-cms-backend/errs"
)

// objectAPI is the subset of *s3.Client used by S3Store.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps uploads in a bucket that is publicly readable at PublicBaseURL.
type S3Store struct {
	client        objectAPI
	Bucket        string
	KeyPrefix     string
	PublicBaseURL string
	now           func() time.Time
}

func NewS3Store(client *s3.Client, bucket, keyPrefix, publicBaseURL string) *S3Store {
	return newS3Store(client, bucket, keyPrefix, publicBaseURL)
}

func newS3Store(client objectAPI, bucket, keyPrefix, publicBaseURL string) *S3Store {
	keyPrefix = strings.Trim(keyPrefix, "/")
	if keyPrefix != "" {
		keyPrefix += "/"
	}
	return &S3Store{
		client:        client,
		Bucket:        bucket,
		KeyPrefix:     keyPrefix,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

func (s *S3Store) Save(ctx context.Context, r io.Reader, originalName, contentType string) (Upload, error) {
	mimeType, r, err := DetectContentType(r, contentType)
	if err != nil {
		return Upload{}, errs.NewStorageError("read upload", err)
	}
	// PutObject signs a seekable body; uploads are already size-capped upstream.
	data, err := io.ReadAll(r)
	if err != nil {
		return Upload{}, errs.NewStorageError("read upload", err)
	}

	filename := Filename(originalName, mimeType, s.now())
	key := s.KeyPrefix + filename
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if mimeType != "" {
		input.ContentType = aws.String(mimeType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return Upload{}, errs.NewStorageError("upload object to s3", err)
	}

	return Upload{
		URL:      s.PublicBaseURL + "/" + key,
		Filename: filename,
		Size:     int64(len(data)),
		MimeType: mimeType,
	}, nil
}

func (s *S3Store) Owns(url string) bool {
	return strings.HasPrefix(url, s.PublicBaseURL+"/"+s.KeyPrefix)
}

// Delete removes the object behind url. S3 deletes are idempotent, so missing objects
// need no special casing.
func (s *S3Store) Delete(ctx context.Context, url string) error {
	if !s.Owns(url) {
		return nil
	}
	key := strings.TrimPrefix(url, s.PublicBaseURL+"/")
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		return errs.NewStorageError("delete object from s3", err)
	}
	return nil
}
