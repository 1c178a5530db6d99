/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jobs

import (
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/errors"
)

// Config is a typed analysis configuration. Each implementation flattens
// into one member of the wrapped client's job-config union.
type Config interface {
	toUnion() (types.JobConfigInput, error)
}

// Equation is one custom band-math operation.
type Equation struct {
	// Name labels the output band.
	Name string
	// Expression is the band arithmetic, e.g. "(nir - red) / (nir + red)".
	Expression string
	// OutputType optionally overrides the output pixel type.
	OutputType types.OutputType
}

// BandMath computes per-pixel arithmetic across bands.
type BandMath struct {
	// PredefinedIndices names indices the service knows, e.g. "NDVI".
	PredefinedIndices []string
	// Equations are custom operations.
	Equations []Equation
}

func (c BandMath) toUnion() (types.JobConfigInput, error) {
	if len(c.PredefinedIndices) == 0 && len(c.Equations) == 0 {
		return nil, errors.NewValidationError("BandMath", "at least one index or equation is required")
	}
	cfg := types.BandMathConfigInput{
		PredefinedIndices: c.PredefinedIndices,
	}
	if len(c.Equations) > 0 {
		ops := make([]types.Operation, 0, len(c.Equations))
		for _, eq := range c.Equations {
			if eq.Name == "" || eq.Expression == "" {
				return nil, errors.NewValidationError("Equations", "name and expression are required")
			}
			name := eq.Name
			expr := eq.Expression
			ops = append(ops, types.Operation{
				Name:       &name,
				Equation:   &expr,
				OutputType: eq.OutputType,
			})
		}
		cfg.CustomIndices = &types.CustomIndicesInput{Operations: ops}
	}
	return &types.JobConfigInputMemberBandMathConfig{Value: cfg}, nil
}

// ZonalStatistics reduces pixel values over the zones in a vector file.
type ZonalStatistics struct {
	// Statistics to compute per zone, e.g. types.ZonalStatisticsMean.
	Statistics []types.ZonalStatistics
	// ZoneS3Path points at the zone geometry file.
	ZoneS3Path string
	// ZoneS3PathKMSKeyID optionally decrypts the zone file.
	ZoneS3PathKMSKeyID string
	// TargetBands restricts the reduction to the named bands.
	TargetBands []string
}

func (c ZonalStatistics) toUnion() (types.JobConfigInput, error) {
	if len(c.Statistics) == 0 {
		return nil, errors.NewValidationError("Statistics", "at least one statistic is required")
	}
	if c.ZoneS3Path == "" {
		return nil, errors.NewValidationError("ZoneS3Path", "zone file path is required")
	}
	path := c.ZoneS3Path
	cfg := types.ZonalStatisticsConfigInput{
		Statistics:  c.Statistics,
		ZoneS3Path:  &path,
		TargetBands: c.TargetBands,
	}
	if c.ZoneS3PathKMSKeyID != "" {
		kms := c.ZoneS3PathKMSKeyID
		cfg.ZoneS3PathKmsKeyId = &kms
	}
	return &types.JobConfigInputMemberZonalStatisticsConfig{Value: cfg}, nil
}

// TemporalStatistics reduces pixel values across the time dimension.
type TemporalStatistics struct {
	// Statistics to compute, e.g. types.TemporalStatisticsMean.
	Statistics []types.TemporalStatistics
	// GroupBy optionally buckets the reduction, e.g. types.GroupByYearly.
	GroupBy types.GroupBy
	// TargetBands restricts the reduction to the named bands.
	TargetBands []string
}

func (c TemporalStatistics) toUnion() (types.JobConfigInput, error) {
	if len(c.Statistics) == 0 {
		return nil, errors.NewValidationError("Statistics", "at least one statistic is required")
	}
	return &types.JobConfigInputMemberTemporalStatisticsConfig{
		Value: types.TemporalStatisticsConfigInput{
			Statistics:  c.Statistics,
			GroupBy:     c.GroupBy,
			TargetBands: c.TargetBands,
		},
	}, nil
}

// CloudRemoval interpolates cloudy pixels away.
type CloudRemoval struct {
	// Algorithm defaults to the service's interpolation algorithm.
	Algorithm types.AlgorithmNameCloudRemoval
	// InterpolationValue fills pixels the algorithm cannot recover.
	InterpolationValue string
	// TargetBands restricts processing to the named bands.
	TargetBands []string
}

func (c CloudRemoval) toUnion() (types.JobConfigInput, error) {
	cfg := types.CloudRemovalConfigInput{
		AlgorithmName: c.Algorithm,
		TargetBands:   c.TargetBands,
	}
	if c.InterpolationValue != "" {
		v := c.InterpolationValue
		cfg.InterpolationValue = &v
	}
	return &types.JobConfigInputMemberCloudRemovalConfig{Value: cfg}, nil
}

// GeoMosaic merges overlapping scenes into one raster.
type GeoMosaic struct {
	Algorithm   types.AlgorithmNameGeoMosaic
	TargetBands []string
}

func (c GeoMosaic) toUnion() (types.JobConfigInput, error) {
	return &types.JobConfigInputMemberGeoMosaicConfig{
		Value: types.GeoMosaicConfigInput{
			AlgorithmName: c.Algorithm,
			TargetBands:   c.TargetBands,
		},
	}, nil
}

// Resampling rescales rasters to a target resolution.
type Resampling struct {
	// Value and Unit define the target resolution.
	Value float32
	Unit  types.Unit
	// Algorithm optionally overrides the resampling kernel.
	Algorithm   types.AlgorithmNameResampling
	TargetBands []string
}

func (c Resampling) toUnion() (types.JobConfigInput, error) {
	if c.Value <= 0 {
		return nil, errors.NewValidationError("Value", "target resolution must be positive")
	}
	v := c.Value
	return &types.JobConfigInputMemberResamplingConfig{
		Value: types.ResamplingConfigInput{
			OutputResolution: &types.OutputResolutionResamplingInput{
				UserDefined: &types.UserDefined{
					Value: &v,
					Unit:  c.Unit,
				},
			},
			AlgorithmName: c.Algorithm,
			TargetBands:   c.TargetBands,
		},
	}, nil
}

// Stacking layers scenes into a multi-band output.
type Stacking struct {
	// Resolution selects which input resolution the stack adopts.
	Resolution  types.PredefinedResolution
	TargetBands []string
}

func (c Stacking) toUnion() (types.JobConfigInput, error) {
	cfg := types.StackConfigInput{
		TargetBands: c.TargetBands,
	}
	if c.Resolution != "" {
		cfg.OutputResolution = &types.OutputResolutionStackInput{
			Predefined: c.Resolution,
		}
	}
	return &types.JobConfigInputMemberStackConfig{Value: cfg}, nil
}
