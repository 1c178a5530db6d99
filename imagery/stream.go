/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package imagery

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/geoapi"
	"github.com/suparena/geoengine/models"
)

// Stream performs a raster search and delivers every matching scene over a
// channel, following pagination with configurable options
func (s *Service) Stream(ctx context.Context, arn string, query *types.RasterDataCollectionQueryWithBandFilterInput, opts ...models.StreamOption) <-chan models.StreamResult[types.ItemSource] {
	// Apply options
	options := models.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// Create buffered result channel
	resultCh := make(chan models.StreamResult[types.ItemSource], options.BufferSize)

	// Start streaming in background
	go s.streamWorker(ctx, arn, query, options, resultCh)

	return resultCh
}

// streamWorker handles the actual streaming logic
func (s *Service) streamWorker(
	ctx context.Context,
	arn string,
	query *types.RasterDataCollectionQueryWithBandFilterInput,
	options models.StreamOptions,
	resultCh chan<- models.StreamResult[types.ItemSource],
) {
	defer close(resultCh)

	var (
		itemIndex  int64
		pageNumber int
		errs       []error
	)
	startTime := time.Now()

	// Progress reporting helper
	reportProgress := func(nextToken *string) {
		if options.ProgressHandler != nil {
			progress := models.StreamProgress{
				ItemsProcessed: itemIndex,
				PagesProcessed: pageNumber,
				NextToken:      nextToken,
				Errors:         errs,
				StartTime:      startTime,
			}

			elapsed := time.Since(startTime).Seconds()
			if elapsed > 0 {
				progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
			}

			options.ProgressHandler(progress)
		}
	}

	input := &sdk.SearchRasterDataCollectionInput{
		Arn:                       &arn,
		RasterDataCollectionQuery: query,
	}

	for {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return
		default:
		}

		out, err := s.searchWithRetry(ctx, input, options)
		if err != nil {
			if options.ErrorHandler != nil && options.ErrorHandler(err) {
				// Error handler says to keep going with the same page
				errs = append(errs, err)
				continue
			}
			resultCh <- models.StreamResult[types.ItemSource]{
				Error: fmt.Errorf("raster search failed: %w", err),
				Meta: models.StreamMeta{
					Index:     itemIndex,
					Page:      pageNumber,
					Timestamp: time.Now(),
				},
			}
			return
		}

		pageNumber++

		for _, item := range out.Items {
			result := models.StreamResult[types.ItemSource]{
				Item: item,
				Meta: models.StreamMeta{
					Index:     itemIndex,
					Page:      pageNumber,
					Timestamp: time.Now(),
				},
			}
			itemIndex++

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}

		reportProgress(out.NextToken)

		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		input.NextToken = out.NextToken
	}

	// Final progress report
	reportProgress(nil)
}

// searchWithRetry executes a search page with configurable retry logic
func (s *Service) searchWithRetry(
	ctx context.Context,
	input *sdk.SearchRasterDataCollectionInput,
	options models.StreamOptions,
) (*sdk.SearchRasterDataCollectionOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		// Check context before retry
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := s.api.SearchRasterDataCollection(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err

		if !geoapi.IsTransient(err) {
			return nil, err
		}

		// Don't sleep after last attempt
		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("search failed after %d retries: %w", options.MaxRetries, lastErr)
}
