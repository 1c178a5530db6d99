/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jobs

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/errors"
	"github.com/suparena/geoengine/geoapi/mock"
)

func TestWaitForCompletion(t *testing.T) {
	t.Run("CompletesAfterPolling", func(t *testing.T) {
		api := mock.New()
		statuses := []types.EarthObservationJobStatus{
			types.EarthObservationJobStatusInitializing,
			types.EarthObservationJobStatusInProgress,
			types.EarthObservationJobStatusCompleted,
		}
		poll := 0
		api.GetEarthObservationJobFunc = func(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error) {
			status := statuses[poll]
			poll++
			return &sdk.GetEarthObservationJobOutput{Arn: params.Arn, Status: status}, nil
		}

		var seen []types.EarthObservationJobStatus
		out, err := NewService(api).WaitForCompletion(context.Background(), "arn:job/abc",
			WithPollInterval(time.Millisecond),
			WithStatusHandler(func(s types.EarthObservationJobStatus) { seen = append(seen, s) }),
		)
		if err != nil {
			t.Fatalf("WaitForCompletion failed: %v", err)
		}
		if out.Status != types.EarthObservationJobStatusCompleted {
			t.Errorf("expected completed status, got %v", out.Status)
		}
		if len(seen) != 3 {
			t.Errorf("expected 3 status callbacks, got %d", len(seen))
		}
	})

	t.Run("FailureReturnsJobFailureError", func(t *testing.T) {
		api := mock.New()
		api.GetEarthObservationJobFunc = func(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error) {
			return &sdk.GetEarthObservationJobOutput{
				Arn:          params.Arn,
				Status:       types.EarthObservationJobStatusFailed,
				ErrorDetails: &types.EarthObservationJobErrorDetails{Message: aws.String("input scene missing")},
			}, nil
		}

		out, err := NewService(api).WaitForCompletion(context.Background(), "arn:job/abc",
			WithPollInterval(time.Millisecond))
		if !errors.IsJobFailed(err) {
			t.Fatalf("expected job failure error, got %v", err)
		}
		var jfe *errors.JobFailureError
		if !stderrors.As(err, &jfe) {
			t.Fatalf("expected *JobFailureError, got %T", err)
		}
		if jfe.ARN != "arn:job/abc" || jfe.Message != "input scene missing" {
			t.Errorf("failure details not carried: %+v", jfe)
		}
		if out == nil || out.Status != types.EarthObservationJobStatusFailed {
			t.Errorf("expected final job state alongside the error, got %+v", out)
		}
	})

	t.Run("RetriesTransientPollErrors", func(t *testing.T) {
		api := mock.New()
		poll := 0
		api.GetEarthObservationJobFunc = func(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error) {
			poll++
			if poll <= 2 {
				return nil, &types.ThrottlingException{Message: aws.String("slow down")}
			}
			return &sdk.GetEarthObservationJobOutput{Arn: params.Arn, Status: types.EarthObservationJobStatusCompleted}, nil
		}

		_, err := NewService(api).WaitForCompletion(context.Background(), "arn:job/abc",
			WithPollInterval(time.Millisecond),
			WithWaitRetryBackoff(time.Millisecond),
		)
		if err != nil {
			t.Fatalf("WaitForCompletion failed: %v", err)
		}
		if poll != 3 {
			t.Errorf("expected 3 polls (2 transient + 1 success), got %d", poll)
		}
	})

	t.Run("GivesUpAfterMaxTransientRetries", func(t *testing.T) {
		api := mock.New()
		api.GetEarthObservationJobFunc = func(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error) {
			return nil, &types.ThrottlingException{Message: aws.String("slow down")}
		}

		_, err := NewService(api).WaitForCompletion(context.Background(), "arn:job/abc",
			WithMaxTransientRetries(1),
			WithWaitRetryBackoff(time.Millisecond),
		)
		if err == nil {
			t.Fatal("expected an error after exhausting retries")
		}
		var te *types.ThrottlingException
		if !stderrors.As(err, &te) {
			t.Errorf("expected wrapped throttling error, got %v", err)
		}
	})

	t.Run("NonTransientErrorForwarded", func(t *testing.T) {
		api := mock.New()
		serviceErr := &types.ResourceNotFoundException{Message: aws.String("no such job")}
		api.GetEarthObservationJobFunc = func(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error) {
			return nil, serviceErr
		}

		_, err := NewService(api).WaitForCompletion(context.Background(), "arn:job/abc")
		if !stderrors.Is(err, serviceErr) {
			t.Errorf("expected wrapped service error, got %v", err)
		}
		if api.CallCount("GetEarthObservationJob") != 1 {
			t.Errorf("expected a single poll, got %d", api.CallCount("GetEarthObservationJob"))
		}
	})

	t.Run("ContextCancellation", func(t *testing.T) {
		api := mock.New()
		api.GetEarthObservationJobFunc = func(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error) {
			return &sdk.GetEarthObservationJobOutput{Arn: params.Arn, Status: types.EarthObservationJobStatusInProgress}, nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewService(api).WaitForCompletion(ctx, "arn:job/abc",
			WithPollInterval(time.Hour))
		if !stderrors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
