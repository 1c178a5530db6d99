/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geoapi

import (
	"context"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
)

// GeospatialAPI is the subset of the wrapped geospatial client used by this
// library. *sagemakergeospatial.Client satisfies it; tests substitute mocks.
type GeospatialAPI interface {
	ListRasterDataCollections(ctx context.Context, params *sdk.ListRasterDataCollectionsInput, optFns ...func(*sdk.Options)) (*sdk.ListRasterDataCollectionsOutput, error)
	GetRasterDataCollection(ctx context.Context, params *sdk.GetRasterDataCollectionInput, optFns ...func(*sdk.Options)) (*sdk.GetRasterDataCollectionOutput, error)
	SearchRasterDataCollection(ctx context.Context, params *sdk.SearchRasterDataCollectionInput, optFns ...func(*sdk.Options)) (*sdk.SearchRasterDataCollectionOutput, error)

	StartEarthObservationJob(ctx context.Context, params *sdk.StartEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.StartEarthObservationJobOutput, error)
	GetEarthObservationJob(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error)
	StopEarthObservationJob(ctx context.Context, params *sdk.StopEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.StopEarthObservationJobOutput, error)
	DeleteEarthObservationJob(ctx context.Context, params *sdk.DeleteEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.DeleteEarthObservationJobOutput, error)
	ListEarthObservationJobs(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error)
	ExportEarthObservationJob(ctx context.Context, params *sdk.ExportEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.ExportEarthObservationJobOutput, error)

	StartVectorEnrichmentJob(ctx context.Context, params *sdk.StartVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.StartVectorEnrichmentJobOutput, error)
	GetVectorEnrichmentJob(ctx context.Context, params *sdk.GetVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.GetVectorEnrichmentJobOutput, error)
	StopVectorEnrichmentJob(ctx context.Context, params *sdk.StopVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.StopVectorEnrichmentJobOutput, error)
	ListVectorEnrichmentJobs(ctx context.Context, params *sdk.ListVectorEnrichmentJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListVectorEnrichmentJobsOutput, error)
	ExportVectorEnrichmentJob(ctx context.Context, params *sdk.ExportVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.ExportVectorEnrichmentJobOutput, error)
}

// S3Presigner generates presigned URLs for exported artifacts.
// *s3.PresignClient satisfies it.
type S3Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}
