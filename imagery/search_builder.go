/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package imagery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/catalog"
	"github.com/suparena/geoengine/errors"
	"github.com/suparena/geoengine/geometry"
	"github.com/suparena/geoengine/models"
)

// SearchBuilder provides a fluent interface for building raster searches
type SearchBuilder struct {
	svc        *Service
	collection string
	timeRange  models.TimeRange
	aoi        types.AreaOfInterest
	bands      []string
	filters    []types.PropertyFilter
	buildErr   error
}

// Query creates a new search builder
func (s *Service) Query() *SearchBuilder {
	return &SearchBuilder{svc: s}
}

// WithCollection sets the raster data collection ARN to search
func (q *SearchBuilder) WithCollection(arn string) *SearchBuilder {
	q.collection = arn
	return q
}

// WithCollectionName resolves a friendly catalog name to its ARN
func (q *SearchBuilder) WithCollectionName(name string) *SearchBuilder {
	arn, err := catalog.Resolve(name)
	if err != nil {
		q.buildErr = err
		return q
	}
	q.collection = arn
	return q
}

// WithTimeRange bounds the search to an acquisition window
func (q *SearchBuilder) WithTimeRange(r models.TimeRange) *SearchBuilder {
	q.timeRange = r
	return q
}

// WithAOI restricts the search to an area of interest
func (q *SearchBuilder) WithAOI(aoi types.AreaOfInterest) *SearchBuilder {
	q.aoi = aoi
	return q
}

// WithBounds restricts the search to a bounding box
func (q *SearchBuilder) WithBounds(b models.BoundingBox) *SearchBuilder {
	aoi, err := geometry.AOIFromBounds(b)
	if err != nil {
		q.buildErr = err
		return q
	}
	q.aoi = aoi
	return q
}

// WithBands restricts returned assets to the named bands
func (q *SearchBuilder) WithBands(bands ...string) *SearchBuilder {
	q.bands = append(q.bands, bands...)
	return q
}

// WithCloudCoverBetween filters scenes by optical cloud cover percentage
func (q *SearchBuilder) WithCloudCoverBetween(lower, upper float32) *SearchBuilder {
	if lower < 0 || upper > 100 || lower > upper {
		q.buildErr = errors.NewValidationError("CloudCover", "bounds must satisfy 0 <= lower <= upper <= 100")
		return q
	}
	q.filters = append(q.filters, types.PropertyFilter{
		Property: &types.PropertyMemberEoCloudCover{
			Value: types.EoCloudCoverInput{
				LowerBound: &lower,
				UpperBound: &upper,
			},
		},
	})
	return q
}

// WithPlatform filters scenes by acquisition platform, e.g. "SENTINEL-2A"
func (q *SearchBuilder) WithPlatform(platform string) *SearchBuilder {
	q.filters = append(q.filters, types.PropertyFilter{
		Property: &types.PropertyMemberPlatform{
			Value: types.PlatformInput{
				Value:              &platform,
				ComparisonOperator: types.ComparisonOperatorEquals,
			},
		},
	})
	return q
}

// Build constructs the wrapped client's query input
func (q *SearchBuilder) Build() (*types.RasterDataCollectionQueryWithBandFilterInput, error) {
	if q.buildErr != nil {
		return nil, q.buildErr
	}
	if q.collection == "" {
		return nil, errors.NewValidationError("Collection", "collection ARN is required")
	}

	timeFilter, err := q.timeRange.ToFilter()
	if err != nil {
		return nil, err
	}

	query := &types.RasterDataCollectionQueryWithBandFilterInput{
		TimeRangeFilter: timeFilter,
		AreaOfInterest:  q.aoi,
		BandFilter:      q.bands,
	}
	if len(q.filters) > 0 {
		query.PropertyFilters = &types.PropertyFilters{
			LogicalOperator: types.LogicalOperatorAnd,
			Properties:      q.filters,
		}
	}
	return query, nil
}

// Execute runs the search and gathers every page of results
func (q *SearchBuilder) Execute(ctx context.Context) ([]types.ItemSource, error) {
	query, err := q.Build()
	if err != nil {
		return nil, err
	}

	var (
		items     []types.ItemSource
		nextToken *string
	)
	for {
		out, err := q.svc.Search(ctx, q.collection, query, nextToken)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		nextToken = out.NextToken
	}
	return items, nil
}

// ExecuteGeoJSON runs the search and returns the results as a GeoJSON
// feature collection
func (q *SearchBuilder) ExecuteGeoJSON(ctx context.Context) (geometry.FeatureCollection, error) {
	items, err := q.Execute(ctx)
	if err != nil {
		return geometry.FeatureCollection{}, err
	}
	return geometry.CollectionFromItems(items), nil
}

// Stream executes the search as a stream
func (q *SearchBuilder) Stream(ctx context.Context, opts ...models.StreamOption) <-chan models.StreamResult[types.ItemSource] {
	query, err := q.Build()
	if err != nil {
		ch := make(chan models.StreamResult[types.ItemSource], 1)
		ch <- models.StreamResult[types.ItemSource]{
			Error: fmt.Errorf("failed to build search: %w", err),
		}
		close(ch)
		return ch
	}
	return q.svc.Stream(ctx, q.collection, query, opts...)
}
