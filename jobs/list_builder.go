/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
)

// ListBuilder provides a fluent interface for listing jobs. Status and sort
// order are forwarded to the wrapped client; time filters are applied
// client-side because the wrapped API only filters by status.
type ListBuilder struct {
	svc       *Service
	status    types.EarthObservationJobStatus
	sortOrder types.SortOrder
	limit     int32
	pageSize  int32
	after     *time.Time
	before    *time.Time
}

// List creates a new job list builder
func (s *Service) List() *ListBuilder {
	return &ListBuilder{svc: s}
}

// WithStatus filters jobs by status
func (b *ListBuilder) WithStatus(status types.EarthObservationJobStatus) *ListBuilder {
	b.status = status
	return b
}

// Latest returns results in descending creation order (newest first)
func (b *ListBuilder) Latest() *ListBuilder {
	b.sortOrder = types.SortOrderDescending
	return b
}

// Oldest returns results in ascending creation order (oldest first)
func (b *ListBuilder) Oldest() *ListBuilder {
	b.sortOrder = types.SortOrderAscending
	return b
}

// WithLimit caps the number of results returned
func (b *ListBuilder) WithLimit(limit int32) *ListBuilder {
	b.limit = limit
	return b
}

// WithPageSize bounds how many summaries each underlying list call fetches
func (b *ListBuilder) WithPageSize(size int32) *ListBuilder {
	b.pageSize = size
	return b
}

// CreatedAfter keeps only jobs created after the timestamp
func (b *ListBuilder) CreatedAfter(t time.Time) *ListBuilder {
	b.after = &t
	return b
}

// CreatedBefore keeps only jobs created before the timestamp
func (b *ListBuilder) CreatedBefore(t time.Time) *ListBuilder {
	b.before = &t
	return b
}

// InLastDays keeps only jobs created in the last n days
func (b *ListBuilder) InLastDays(n int) *ListBuilder {
	return b.CreatedAfter(time.Now().AddDate(0, 0, -n))
}

// Execute lists jobs, following pagination until the limit is reached.
func (b *ListBuilder) Execute(ctx context.Context) ([]types.ListEarthObservationJobOutputConfig, error) {
	input := &sdk.ListEarthObservationJobsInput{
		StatusEquals: b.status,
		SortBy:       aws.String("CreationTime"),
	}
	if b.sortOrder != "" {
		input.SortOrder = b.sortOrder
	}
	switch {
	case b.pageSize > 0:
		input.MaxResults = aws.Int32(b.pageSize)
	case b.limit > 0 && b.after == nil && b.before == nil:
		// No client-side filters drop summaries, so the limit can bound
		// the fetch itself.
		input.MaxResults = aws.Int32(b.limit)
	}

	var summaries []types.ListEarthObservationJobOutputConfig
	for {
		out, err := b.svc.api.ListEarthObservationJobs(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list earth observation jobs: %w", err)
		}

		for _, s := range out.EarthObservationJobSummaries {
			if !b.matches(s) {
				continue
			}
			summaries = append(summaries, s)
			if b.limit > 0 && int32(len(summaries)) >= b.limit {
				return summaries, nil
			}
		}

		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		input.NextToken = out.NextToken
	}
	return summaries, nil
}

func (b *ListBuilder) matches(s types.ListEarthObservationJobOutputConfig) bool {
	if b.after == nil && b.before == nil {
		return true
	}
	if s.CreationTime == nil {
		return false
	}
	if b.after != nil && !s.CreationTime.After(*b.after) {
		return false
	}
	if b.before != nil && !s.CreationTime.Before(*b.before) {
		return false
	}
	return true
}
