// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-acervo/internal/config"
	"github.com/MKhiriev/go-acervo/internal/logger"
	"github.com/MKhiriev/go-acervo/internal/utils"
)

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// s3ImageStorage keeps images as objects of one bucket, under an optional
// key prefix.
type s3ImageStorage struct {
	client *s3.Client
	bucket string
	prefix string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewS3ImageStorage constructs an [ImageStorage] over an S3 compatible
// bucket. Static credentials are used when an access key is configured,
// the default AWS credential chain otherwise.
func NewS3ImageStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (ImageStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		logger.Err(err).Str("func", "NewS3ImageStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 image storage")
	return &s3ImageStorage{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func (s *s3ImageStorage) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *s3ImageStorage) Store(ctx context.Context, r io.Reader, ext string) (string, error) {
	log := logger.FromContext(ctx)

	// the SDK needs a seekable body to sign plain HTTP uploads
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading image: %w", err)
	}

	ext = strings.ToLower(ext)
	name := s.ids.Generate() + ext

	// the generated key is fresh; IfNoneMatch keeps a collision from
	// replacing an existing object
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(name)),
		Body:        bytes.NewReader(data),
		IfNoneMatch: aws.String("*"),
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err = s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3ImageStorage.Store").Str("name", name).Msg("error uploading image")
		return "", fmt.Errorf("error uploading image: %w", err)
	}

	return name, nil
}

func (s *s3ImageStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := checkImageName(name); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("error downloading image: %w", err)
	}

	return out.Body, nil
}

// Delete removes the object. S3 reports success for missing keys.
func (s *s3ImageStorage) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if err := checkImageName(name); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3ImageStorage.Delete").Str("name", name).Msg("error deleting image")
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}
