/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/errors"
)

// TimeRange bounds a raster query or analysis job to an acquisition window.
type TimeRange struct {
	// Start is the inclusive beginning of the window.
	Start time.Time
	// End is the inclusive end of the window.
	End time.Time
}

// Validate checks that both bounds are set and ordered.
func (r TimeRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return errors.NewValidationError("TimeRange", "start and end must both be set")
	}
	if !r.Start.Before(r.End) {
		return errors.NewValidationError("TimeRange", "start must precede end")
	}
	return nil
}

// ToFilter flattens the range into the wrapped client's filter input.
func (r TimeRange) ToFilter() (*types.TimeRangeFilterInput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	start := r.Start
	end := r.End
	return &types.TimeRangeFilterInput{
		StartTime: &start,
		EndTime:   &end,
	}, nil
}

// LastDays returns a TimeRange covering the last n days up to now.
func LastDays(n int) TimeRange {
	now := time.Now().UTC()
	return TimeRange{
		Start: now.AddDate(0, 0, -n),
		End:   now,
	}
}

// BoundingBox is a lon/lat axis-aligned box in EPSG:4326.
type BoundingBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// Validate checks coordinate bounds and ordering.
func (b BoundingBox) Validate() error {
	if b.West < -180 || b.East > 180 || b.West >= b.East {
		return errors.NewValidationError("BoundingBox", "longitude bounds must satisfy -180 <= west < east <= 180")
	}
	if b.South < -90 || b.North > 90 || b.South >= b.North {
		return errors.NewValidationError("BoundingBox", "latitude bounds must satisfy -90 <= south < north <= 90")
	}
	return nil
}

// ExportOptions describes an export task destination.
type ExportOptions struct {
	// JobARN identifies the completed analysis job to export.
	JobARN string
	// ExecutionRoleARN is the role the service assumes to write results.
	ExecutionRoleARN string
	// S3URI is the destination prefix, e.g. "s3://bucket/results/".
	S3URI string
	// KMSKeyID optionally encrypts the exported objects.
	KMSKeyID string
	// SourceImages also exports the input imagery alongside results.
	SourceImages bool
}

// Validate performs presence and shape checks before forwarding.
func (o ExportOptions) Validate() error {
	if o.JobARN == "" {
		return errors.NewValidationError("JobARN", "job ARN is required")
	}
	if o.ExecutionRoleARN == "" {
		return errors.NewValidationError("ExecutionRoleARN", "execution role ARN is required")
	}
	if !strings.HasPrefix(o.S3URI, "s3://") {
		return errors.NewValidationError("S3URI", "must start with s3://")
	}
	return nil
}
