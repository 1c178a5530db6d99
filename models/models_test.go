/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"testing"
	"time"

	"github.com/suparena/geoengine/errors"
)

func TestTimeRangeValidate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		r       TimeRange
		wantErr bool
	}{
		{"Valid", TimeRange{Start: now.Add(-time.Hour), End: now}, false},
		{"MissingStart", TimeRange{End: now}, true},
		{"MissingEnd", TimeRange{Start: now}, true},
		{"Inverted", TimeRange{Start: now, End: now.Add(-time.Hour)}, true},
		{"Equal", TimeRange{Start: now, End: now}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr && !errors.IsValidationError(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestTimeRangeToFilter(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	filter, err := TimeRange{Start: start, End: end}.ToFilter()
	if err != nil {
		t.Fatalf("ToFilter failed: %v", err)
	}
	if !filter.StartTime.Equal(start) || !filter.EndTime.Equal(end) {
		t.Errorf("filter bounds do not match input: %v - %v", filter.StartTime, filter.EndTime)
	}
}

func TestLastDays(t *testing.T) {
	r := LastDays(7)
	if err := r.Validate(); err != nil {
		t.Fatalf("LastDays range should validate: %v", err)
	}
	if d := r.End.Sub(r.Start); d < 6*24*time.Hour || d > 8*24*time.Hour {
		t.Errorf("expected roughly 7 days, got %v", d)
	}
}

func TestBoundingBoxValidate(t *testing.T) {
	tests := []struct {
		name    string
		b       BoundingBox
		wantErr bool
	}{
		{"Valid", BoundingBox{West: -122.5, South: 37.2, East: -121.8, North: 37.9}, false},
		{"InvertedLongitude", BoundingBox{West: 10, South: 0, East: -10, North: 10}, true},
		{"InvertedLatitude", BoundingBox{West: -10, South: 10, East: 10, North: 0}, true},
		{"OutOfRange", BoundingBox{West: -200, South: 0, East: 10, North: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestExportOptionsValidate(t *testing.T) {
	valid := ExportOptions{
		JobARN:           "arn:aws:sagemaker-geospatial:us-west-2:123:eoj/abc",
		ExecutionRoleARN: "arn:aws:iam::123:role/export",
		S3URI:            "s3://bucket/results/",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("MissingJobARN", func(t *testing.T) {
		o := valid
		o.JobARN = ""
		if err := o.Validate(); !errors.IsValidationError(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("BadDestination", func(t *testing.T) {
		o := valid
		o.S3URI = "https://bucket/results/"
		if err := o.Validate(); !errors.IsValidationError(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestDefaultStreamOptions(t *testing.T) {
	opts := DefaultStreamOptions()
	if opts.BufferSize != 100 || opts.MaxRetries != 3 || opts.RetryBackoff != time.Second {
		t.Errorf("unexpected defaults: %+v", opts)
	}

	for _, opt := range []StreamOption{
		WithBufferSize(10),
		WithMaxRetries(1),
		WithRetryBackoff(50 * time.Millisecond),
	} {
		opt(&opts)
	}
	if opts.BufferSize != 10 || opts.MaxRetries != 1 || opts.RetryBackoff != 50*time.Millisecond {
		t.Errorf("options not applied: %+v", opts)
	}
}
