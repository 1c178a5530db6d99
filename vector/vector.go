/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package vector

import (
	"context"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/google/uuid"
	"github.com/suparena/geoengine/errors"
	"github.com/suparena/geoengine/geoapi"
)

// Service enriches tabular vector data with geospatial lookups. Reverse
// geocoding maps coordinates to addresses; map matching snaps GPS traces
// to road geometry.
type Service struct {
	api geoapi.GeospatialAPI
}

// NewService constructs a Service over the wrapped client.
func NewService(api geoapi.GeospatialAPI) *Service {
	return &Service{api: api}
}

// CSVSource locates the CSV input for an enrichment job.
type CSVSource struct {
	// S3URI is the s3:// location of the CSV file.
	S3URI string
	// KMSKeyID optionally names the key the file is encrypted with.
	KMSKeyID string
}

func (s CSVSource) validate() error {
	if s.S3URI == "" {
		return errors.NewValidationError("S3URI", "a CSV source location is required")
	}
	return nil
}

func (s CSVSource) toInputConfig() *types.VectorEnrichmentJobInputConfig {
	uri := s.S3URI
	s3Data := &types.VectorEnrichmentJobS3Data{S3Uri: &uri}
	if s.KMSKeyID != "" {
		kms := s.KMSKeyID
		s3Data.KmsKeyId = &kms
	}
	return &types.VectorEnrichmentJobInputConfig{
		DocumentType:     types.VectorEnrichmentJobDocumentTypeCsv,
		DataSourceConfig: &types.VectorEnrichmentJobDataSourceConfigInputMemberS3Data{Value: *s3Data},
	}
}

// MapMatchConfig names the CSV columns a map-matching job reads.
type MapMatchConfig struct {
	// IDField is the column grouping points into one trace.
	IDField string
	// TimestampField is the column ordering points within a trace.
	TimestampField string
	// XField is the longitude column.
	XField string
	// YField is the latitude column.
	YField string
}

func (c MapMatchConfig) validate() error {
	if c.IDField == "" || c.TimestampField == "" || c.XField == "" || c.YField == "" {
		return errors.NewValidationError("MapMatchConfig", "id, timestamp, x, and y column names are all required")
	}
	return nil
}

// ReverseGeocode starts a job that resolves each row's coordinates to an
// address. lonField and latField name the CSV columns holding the
// coordinates.
func (s *Service) ReverseGeocode(ctx context.Context, name, roleARN string, src CSVSource, lonField, latField string) (*sdk.StartVectorEnrichmentJobOutput, error) {
	if name == "" || roleARN == "" {
		return nil, errors.NewValidationError("Name/ExecutionRoleARN", "job name and execution role are required")
	}
	if err := src.validate(); err != nil {
		return nil, err
	}
	if lonField == "" || latField == "" {
		return nil, errors.NewValidationError("lonField/latField", "longitude and latitude column names are required")
	}

	jobConfig := &types.VectorEnrichmentJobConfigMemberReverseGeocodingConfig{
		Value: types.ReverseGeocodingConfig{
			XAttributeName: &lonField,
			YAttributeName: &latField,
		},
	}
	return s.start(ctx, name, roleARN, src, jobConfig)
}

// MapMatch starts a job that snaps each GPS trace in the CSV onto the road
// network.
func (s *Service) MapMatch(ctx context.Context, name, roleARN string, src CSVSource, cfg MapMatchConfig) (*sdk.StartVectorEnrichmentJobOutput, error) {
	if name == "" || roleARN == "" {
		return nil, errors.NewValidationError("Name/ExecutionRoleARN", "job name and execution role are required")
	}
	if err := src.validate(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	jobConfig := &types.VectorEnrichmentJobConfigMemberMapMatchingConfig{
		Value: types.MapMatchingConfig{
			IdAttributeName:        &cfg.IDField,
			TimestampAttributeName: &cfg.TimestampField,
			XAttributeName:         &cfg.XField,
			YAttributeName:         &cfg.YField,
		},
	}
	return s.start(ctx, name, roleARN, src, jobConfig)
}

func (s *Service) start(ctx context.Context, name, roleARN string, src CSVSource, jobConfig types.VectorEnrichmentJobConfig) (*sdk.StartVectorEnrichmentJobOutput, error) {
	token := uuid.NewString()
	out, err := s.api.StartVectorEnrichmentJob(ctx, &sdk.StartVectorEnrichmentJobInput{
		Name:             &name,
		ExecutionRoleArn: &roleARN,
		InputConfig:      src.toInputConfig(),
		JobConfig:        jobConfig,
		ClientToken:      &token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start vector enrichment job: %w", err)
	}
	return out, nil
}

// Get returns the full state of an enrichment job.
func (s *Service) Get(ctx context.Context, arn string) (*sdk.GetVectorEnrichmentJobOutput, error) {
	out, err := s.api.GetVectorEnrichmentJob(ctx, &sdk.GetVectorEnrichmentJobInput{Arn: &arn})
	if err != nil {
		return nil, fmt.Errorf("failed to get vector enrichment job: %w", err)
	}
	return out, nil
}

// Stop requests cancellation of a running enrichment job.
func (s *Service) Stop(ctx context.Context, arn string) error {
	if _, err := s.api.StopVectorEnrichmentJob(ctx, &sdk.StopVectorEnrichmentJobInput{Arn: &arn}); err != nil {
		return fmt.Errorf("failed to stop vector enrichment job: %w", err)
	}
	return nil
}

// List returns enrichment job summaries, optionally filtered by status.
// Pagination is followed to the end.
func (s *Service) List(ctx context.Context, status types.VectorEnrichmentJobStatus) ([]types.ListVectorEnrichmentJobOutputConfig, error) {
	input := &sdk.ListVectorEnrichmentJobsInput{}
	if status != "" {
		str := string(status)
		input.StatusEquals = &str
	}

	var summaries []types.ListVectorEnrichmentJobOutputConfig
	for {
		out, err := s.api.ListVectorEnrichmentJobs(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list vector enrichment jobs: %w", err)
		}
		summaries = append(summaries, out.VectorEnrichmentJobSummaries...)
		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		input.NextToken = out.NextToken
	}
	return summaries, nil
}
