/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package imagery

import (
	"context"
	"fmt"

	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/geoapi"
)

// Service provides typed access to raster data collections. Every method is
// a forwarding call into the wrapped geospatial client.
type Service struct {
	api geoapi.GeospatialAPI
}

// NewService constructs a Service over the wrapped client.
func NewService(api geoapi.GeospatialAPI) *Service {
	return &Service{api: api}
}

// ListCollections returns all raster data collections, following pagination.
func (s *Service) ListCollections(ctx context.Context) ([]types.RasterDataCollectionMetadata, error) {
	var (
		collections []types.RasterDataCollectionMetadata
		nextToken   *string
	)
	for {
		out, err := s.api.ListRasterDataCollections(ctx, &sdk.ListRasterDataCollectionsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list raster data collections: %w", err)
		}
		collections = append(collections, out.RasterDataCollectionSummaries...)
		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		nextToken = out.NextToken
	}
	return collections, nil
}

// GetCollection returns the metadata for one raster data collection.
func (s *Service) GetCollection(ctx context.Context, arn string) (*sdk.GetRasterDataCollectionOutput, error) {
	out, err := s.api.GetRasterDataCollection(ctx, &sdk.GetRasterDataCollectionInput{
		Arn: &arn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get raster data collection: %w", err)
	}
	return out, nil
}

// Search runs one page of a raster search. Callers that want automatic
// pagination should use Query().Execute or Query().Stream instead.
func (s *Service) Search(ctx context.Context, arn string, query *types.RasterDataCollectionQueryWithBandFilterInput, nextToken *string) (*sdk.SearchRasterDataCollectionOutput, error) {
	out, err := s.api.SearchRasterDataCollection(ctx, &sdk.SearchRasterDataCollectionInput{
		Arn:                       &arn,
		RasterDataCollectionQuery: query,
		NextToken:                 nextToken,
	})
	if err != nil {
		return nil, fmt.Errorf("raster search failed: %w", err)
	}
	return out, nil
}
