/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/geoapi/mock"
)

func summaryAt(name string, created time.Time) types.ListEarthObservationJobOutputConfig {
	return types.ListEarthObservationJobOutputConfig{
		Arn:          aws.String("arn:job/" + name),
		Name:         aws.String(name),
		CreationTime: &created,
	}
}

func TestListBuilder(t *testing.T) {
	now := time.Now()

	t.Run("ForwardsStatusAndSort", func(t *testing.T) {
		api := mock.New()
		var captured *sdk.ListEarthObservationJobsInput
		api.ListEarthObservationJobsFunc = func(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error) {
			captured = params
			return &sdk.ListEarthObservationJobsOutput{}, nil
		}

		_, err := NewService(api).List().
			WithStatus(types.EarthObservationJobStatusCompleted).
			Latest().
			Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if captured.StatusEquals != types.EarthObservationJobStatusCompleted {
			t.Errorf("status not forwarded: %v", captured.StatusEquals)
		}
		if captured.SortOrder != types.SortOrderDescending {
			t.Errorf("sort order not forwarded: %v", captured.SortOrder)
		}
		if aws.ToString(captured.SortBy) != "CreationTime" {
			t.Errorf("sort key not forwarded: %v", captured.SortBy)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		api := mock.New()
		api.ListEarthObservationJobsFunc = func(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error) {
			if params.NextToken == nil {
				return &sdk.ListEarthObservationJobsOutput{
					EarthObservationJobSummaries: []types.ListEarthObservationJobOutputConfig{summaryAt("a", now)},
					NextToken:                    aws.String("page2"),
				}, nil
			}
			return &sdk.ListEarthObservationJobsOutput{
				EarthObservationJobSummaries: []types.ListEarthObservationJobOutputConfig{summaryAt("b", now)},
			}, nil
		}

		summaries, err := NewService(api).List().Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(summaries) != 2 {
			t.Fatalf("expected 2 summaries across pages, got %d", len(summaries))
		}
		if api.CallCount("ListEarthObservationJobs") != 2 {
			t.Errorf("expected 2 list calls, got %d", api.CallCount("ListEarthObservationJobs"))
		}
	})

	t.Run("LimitStopsPagination", func(t *testing.T) {
		api := mock.New()
		api.ListEarthObservationJobsFunc = func(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error) {
			return &sdk.ListEarthObservationJobsOutput{
				EarthObservationJobSummaries: []types.ListEarthObservationJobOutputConfig{
					summaryAt("a", now), summaryAt("b", now), summaryAt("c", now),
				},
				NextToken: aws.String("more"),
			}, nil
		}

		summaries, err := NewService(api).List().WithLimit(2).Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(summaries) != 2 {
			t.Errorf("expected limit of 2, got %d", len(summaries))
		}
		if api.CallCount("ListEarthObservationJobs") != 1 {
			t.Errorf("expected pagination to stop at the limit, got %d calls", api.CallCount("ListEarthObservationJobs"))
		}
	})

	t.Run("PageSizeForwarded", func(t *testing.T) {
		api := mock.New()
		var captured *sdk.ListEarthObservationJobsInput
		api.ListEarthObservationJobsFunc = func(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error) {
			captured = params
			return &sdk.ListEarthObservationJobsOutput{}, nil
		}

		if _, err := NewService(api).List().WithPageSize(10).Execute(context.Background()); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if aws.ToInt32(captured.MaxResults) != 10 {
			t.Errorf("page size not forwarded: %v", captured.MaxResults)
		}
	})

	t.Run("LimitBoundsFetch", func(t *testing.T) {
		api := mock.New()
		var captured *sdk.ListEarthObservationJobsInput
		api.ListEarthObservationJobsFunc = func(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error) {
			captured = params
			return &sdk.ListEarthObservationJobsOutput{
				EarthObservationJobSummaries: []types.ListEarthObservationJobOutputConfig{
					summaryAt("a", now), summaryAt("b", now),
				},
			}, nil
		}

		summaries, err := NewService(api).List().WithLimit(2).Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(summaries) != 2 {
			t.Errorf("expected 2 summaries, got %d", len(summaries))
		}
		if aws.ToInt32(captured.MaxResults) != 2 {
			t.Errorf("limit should bound the fetch, got MaxResults %v", captured.MaxResults)
		}

		// With a time filter the limit cannot bound the fetch.
		_, err = NewService(api).List().WithLimit(2).InLastDays(7).Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if captured.MaxResults != nil {
			t.Errorf("time-filtered list must fetch full pages, got MaxResults %v", captured.MaxResults)
		}
	})

	t.Run("TimeFilters", func(t *testing.T) {
		api := mock.New()
		api.ListEarthObservationJobsFunc = func(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error) {
			return &sdk.ListEarthObservationJobsOutput{
				EarthObservationJobSummaries: []types.ListEarthObservationJobOutputConfig{
					summaryAt("old", now.AddDate(0, 0, -30)),
					summaryAt("recent", now.AddDate(0, 0, -2)),
					summaryAt("today", now),
				},
			}, nil
		}

		summaries, err := NewService(api).List().
			CreatedAfter(now.AddDate(0, 0, -7)).
			CreatedBefore(now.AddDate(0, 0, -1)).
			Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(summaries) != 1 || aws.ToString(summaries[0].Name) != "recent" {
			t.Errorf("time filter kept wrong summaries: %+v", summaries)
		}
	})
}
