/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/google/uuid"
	"github.com/suparena/geoengine/errors"
	"github.com/suparena/geoengine/geoapi"
	"github.com/suparena/geoengine/models"
)

// Service exports completed jobs to S3 and produces shareable links to the
// exported artifacts.
type Service struct {
	api       geoapi.GeospatialAPI
	presigner geoapi.S3Presigner
}

// NewService constructs a Service over the wrapped client and an S3 presigner.
// The presigner may be nil when presigned links are not needed.
func NewService(api geoapi.GeospatialAPI, presigner geoapi.S3Presigner) *Service {
	return &Service{api: api, presigner: presigner}
}

// Start exports a completed earth observation job's results to S3.
func (s *Service) Start(ctx context.Context, opts models.ExportOptions) (*sdk.ExportEarthObservationJobOutput, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	arn := opts.JobARN
	role := opts.ExecutionRoleARN
	uri := opts.S3URI
	token := uuid.NewString()
	params := &sdk.ExportEarthObservationJobInput{
		Arn:              &arn,
		ExecutionRoleArn: &role,
		ClientToken:      &token,
		OutputConfig: &types.OutputConfigInput{
			S3Data: &types.ExportS3DataInput{S3Uri: &uri},
		},
	}
	if opts.KMSKeyID != "" {
		kms := opts.KMSKeyID
		params.OutputConfig.S3Data.KmsKeyId = &kms
	}
	if opts.SourceImages {
		yes := true
		params.ExportSourceImages = &yes
	}

	out, err := s.api.ExportEarthObservationJob(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to export earth observation job: %w", err)
	}
	return out, nil
}

// StartVector exports a completed vector enrichment job's results to S3.
func (s *Service) StartVector(ctx context.Context, opts models.ExportOptions) (*sdk.ExportVectorEnrichmentJobOutput, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	arn := opts.JobARN
	role := opts.ExecutionRoleARN
	uri := opts.S3URI
	token := uuid.NewString()
	s3Data := &types.VectorEnrichmentJobS3Data{S3Uri: &uri}
	if opts.KMSKeyID != "" {
		kms := opts.KMSKeyID
		s3Data.KmsKeyId = &kms
	}
	params := &sdk.ExportVectorEnrichmentJobInput{
		Arn:              &arn,
		ExecutionRoleArn: &role,
		ClientToken:      &token,
		OutputConfig:     &types.ExportVectorEnrichmentJobOutputConfig{S3Data: s3Data},
	}

	out, err := s.api.ExportVectorEnrichmentJob(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to export vector enrichment job: %w", err)
	}
	return out, nil
}

// RandomResultKey generates a collision-free object key for an export,
// partitioned by date so buckets stay browsable.
func RandomResultKey(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	datePath := time.Now().UTC().Format("2006/01/02")
	if prefix == "" {
		return fmt.Sprintf("%s/%s", datePath, uuid.NewString())
	}
	return fmt.Sprintf("%s/%s/%s", prefix, datePath, uuid.NewString())
}

// PresignResult returns a time-limited HTTPS URL for an exported object.
func (s *Service) PresignResult(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if s.presigner == nil {
		return "", errors.NewValidationError("presigner", "service was constructed without a presigner")
	}
	if bucket == "" || key == "" {
		return "", errors.NewValidationError("bucket/key", "bucket and key are required")
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign exported object: %w", err)
	}
	return req.URL, nil
}

// PresignResultURI is PresignResult for an s3://bucket/key URI.
func (s *Service) PresignResultURI(ctx context.Context, s3URI string, expiry time.Duration) (string, error) {
	bucket, key, err := splitS3URI(s3URI)
	if err != nil {
		return "", err
	}
	return s.PresignResult(ctx, bucket, key, expiry)
}

func splitS3URI(uri string) (bucket, key string, err error) {
	const scheme = "s3://"
	if !strings.HasPrefix(uri, scheme) {
		return "", "", errors.NewValidationError("S3URI", "URI must start with s3://")
	}
	rest := strings.TrimPrefix(uri, scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", errors.NewValidationError("S3URI", "URI must name a bucket and key")
	}
	return bucket, key, nil
}
