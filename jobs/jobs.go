/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jobs

import (
	"context"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/google/uuid"
	"github.com/suparena/geoengine/errors"
	"github.com/suparena/geoengine/geoapi"
	"github.com/suparena/geoengine/models"
)

// Service starts and tracks earth observation jobs. Every method forwards
// into the wrapped geospatial client.
type Service struct {
	api geoapi.GeospatialAPI
}

// NewService constructs a Service over the wrapped client.
func NewService(api geoapi.GeospatialAPI) *Service {
	return &Service{api: api}
}

// StartInput describes an analysis job. Either Collection+TimeRange or
// PreviousJobARN selects the input imagery.
type StartInput struct {
	// Name labels the job in the service console and listings.
	Name string
	// ExecutionRoleARN is the role the service assumes to read inputs.
	ExecutionRoleARN string

	// Collection is the raster data collection ARN to draw scenes from.
	Collection string
	// TimeRange bounds the input scenes. Required with Collection.
	TimeRange models.TimeRange
	// AOI optionally restricts the input scenes spatially.
	AOI types.AreaOfInterest
	// PropertyFilters optionally restricts the input scenes by property.
	PropertyFilters *types.PropertyFilters

	// PreviousJobARN chains this job onto an earlier job's output.
	PreviousJobARN string

	// Config selects and parameterizes the analysis.
	Config Config

	// KMSKeyID optionally encrypts intermediate results.
	KMSKeyID string
	// Tags propagate to the created job.
	Tags map[string]string
}

// Start validates the input record, flattens it into the wrapped client's
// call shape, and starts the job. A fresh client token is generated per
// call so the service deduplicates retried requests.
func (s *Service) Start(ctx context.Context, in StartInput) (*sdk.StartEarthObservationJobOutput, error) {
	if in.Name == "" {
		return nil, errors.NewValidationError("Name", "job name is required")
	}
	if in.ExecutionRoleARN == "" {
		return nil, errors.NewValidationError("ExecutionRoleARN", "execution role ARN is required")
	}
	if in.Config == nil {
		return nil, errors.NewValidationError("Config", "an analysis config is required")
	}

	jobConfig, err := in.Config.toUnion()
	if err != nil {
		return nil, err
	}

	inputConfig := &types.InputConfigInput{}
	switch {
	case in.PreviousJobARN != "":
		prev := in.PreviousJobARN
		inputConfig.PreviousEarthObservationJobArn = &prev
	case in.Collection != "":
		timeFilter, err := in.TimeRange.ToFilter()
		if err != nil {
			return nil, err
		}
		collection := in.Collection
		inputConfig.RasterDataCollectionQuery = &types.RasterDataCollectionQueryInput{
			RasterDataCollectionArn: &collection,
			TimeRangeFilter:         timeFilter,
			AreaOfInterest:          in.AOI,
			PropertyFilters:         in.PropertyFilters,
		}
	default:
		return nil, errors.NewValidationError("Collection", "either a collection or a previous job ARN is required")
	}

	name := in.Name
	role := in.ExecutionRoleARN
	token := uuid.NewString()
	params := &sdk.StartEarthObservationJobInput{
		Name:             &name,
		ExecutionRoleArn: &role,
		InputConfig:      inputConfig,
		JobConfig:        jobConfig,
		ClientToken:      &token,
		Tags:             in.Tags,
	}
	if in.KMSKeyID != "" {
		kms := in.KMSKeyID
		params.KmsKeyId = &kms
	}

	out, err := s.api.StartEarthObservationJob(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to start earth observation job: %w", err)
	}
	return out, nil
}

// Get returns the full state of a job.
func (s *Service) Get(ctx context.Context, arn string) (*sdk.GetEarthObservationJobOutput, error) {
	out, err := s.api.GetEarthObservationJob(ctx, &sdk.GetEarthObservationJobInput{Arn: &arn})
	if err != nil {
		return nil, fmt.Errorf("failed to get earth observation job: %w", err)
	}
	return out, nil
}

// Stop requests cancellation of a running job.
func (s *Service) Stop(ctx context.Context, arn string) error {
	if _, err := s.api.StopEarthObservationJob(ctx, &sdk.StopEarthObservationJobInput{Arn: &arn}); err != nil {
		return fmt.Errorf("failed to stop earth observation job: %w", err)
	}
	return nil
}

// Delete removes a terminal job.
func (s *Service) Delete(ctx context.Context, arn string) error {
	if _, err := s.api.DeleteEarthObservationJob(ctx, &sdk.DeleteEarthObservationJobInput{Arn: &arn}); err != nil {
		return fmt.Errorf("failed to delete earth observation job: %w", err)
	}
	return nil
}
