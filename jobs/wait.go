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
	"github.com/suparena/geoengine/errors"
	"github.com/suparena/geoengine/geoapi"
)

// WaitOptions configures polling behavior for WaitForCompletion
type WaitOptions struct {
	// PollInterval is the time between status checks (default: 30s)
	PollInterval time.Duration
	// MaxTransientRetries bounds consecutive transient poll failures (default: 3)
	MaxTransientRetries int
	// RetryBackoff is the base backoff after a transient failure (default: 1s)
	RetryBackoff time.Duration
	// StatusHandler is called after every successful poll
	StatusHandler func(status types.EarthObservationJobStatus)
}

// WaitOption is a functional option for WaitForCompletion
type WaitOption func(*WaitOptions)

// DefaultWaitOptions returns default polling options
func DefaultWaitOptions() WaitOptions {
	return WaitOptions{
		PollInterval:        30 * time.Second,
		MaxTransientRetries: 3,
		RetryBackoff:        time.Second,
	}
}

// WithPollInterval sets the time between status checks
func WithPollInterval(d time.Duration) WaitOption {
	return func(o *WaitOptions) { o.PollInterval = d }
}

// WithMaxTransientRetries bounds consecutive transient poll failures
func WithMaxTransientRetries(n int) WaitOption {
	return func(o *WaitOptions) { o.MaxTransientRetries = n }
}

// WithWaitRetryBackoff sets the base backoff after a transient failure
func WithWaitRetryBackoff(d time.Duration) WaitOption {
	return func(o *WaitOptions) { o.RetryBackoff = d }
}

// WithStatusHandler sets a callback invoked after every successful poll
func WithStatusHandler(h func(types.EarthObservationJobStatus)) WaitOption {
	return func(o *WaitOptions) { o.StatusHandler = h }
}

// WaitForCompletion polls a job until it reaches a terminal status or the
// context ends. A COMPLETED job returns its final state; FAILED, STOPPED,
// and DELETED return a JobFailureError carrying the service's error detail.
func (s *Service) WaitForCompletion(ctx context.Context, arn string, opts ...WaitOption) (*sdk.GetEarthObservationJobOutput, error) {
	options := DefaultWaitOptions()
	for _, opt := range opts {
		opt(&options)
	}

	transientFailures := 0
	for {
		out, err := s.api.GetEarthObservationJob(ctx, &sdk.GetEarthObservationJobInput{Arn: &arn})
		if err != nil {
			if !geoapi.IsTransient(err) {
				return nil, fmt.Errorf("failed to poll earth observation job: %w", err)
			}
			transientFailures++
			if transientFailures > options.MaxTransientRetries {
				return nil, fmt.Errorf("polling failed after %d transient errors: %w", transientFailures, err)
			}
			backoff := time.Duration(transientFailures) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			continue
		}
		transientFailures = 0

		if options.StatusHandler != nil {
			options.StatusHandler(out.Status)
		}

		switch out.Status {
		case types.EarthObservationJobStatusCompleted:
			return out, nil
		case types.EarthObservationJobStatusFailed,
			types.EarthObservationJobStatusStopped,
			types.EarthObservationJobStatusDeleted:
			message := ""
			if out.ErrorDetails != nil {
				message = aws.ToString(out.ErrorDetails.Message)
			}
			return out, errors.NewJobFailureError(arn, string(out.Status), message)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(options.PollInterval):
		}
	}
}
