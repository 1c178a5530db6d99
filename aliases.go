/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geoengine

import (
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/client"
	"github.com/suparena/geoengine/export"
	"github.com/suparena/geoengine/geometry"
	"github.com/suparena/geoengine/imagery"
	"github.com/suparena/geoengine/jobs"
	"github.com/suparena/geoengine/models"
	"github.com/suparena/geoengine/vector"
)

// Aliases let callers import the root package alone for common workflows.
// Each name resolves to the identical type in its home package.

// Client construction.
type (
	Client        = client.Client
	ClientOptions = client.Options
)

// Option records and streaming types.
type (
	TimeRange     = models.TimeRange
	BoundingBox   = models.BoundingBox
	ExportOptions = models.ExportOptions
	StreamOptions = models.StreamOptions
	StreamMeta    = models.StreamMeta
)

// Job configuration records.
type (
	JobStartInput      = jobs.StartInput
	BandMath           = jobs.BandMath
	Equation           = jobs.Equation
	ZonalStatistics    = jobs.ZonalStatistics
	TemporalStatistics = jobs.TemporalStatistics
	CloudRemoval       = jobs.CloudRemoval
	GeoMosaic          = jobs.GeoMosaic
	Resampling         = jobs.Resampling
	Stacking           = jobs.Stacking
)

// Vector enrichment records.
type (
	CSVSource      = vector.CSVSource
	MapMatchConfig = vector.MapMatchConfig
)

// GeoJSON document shapes.
type (
	Feature           = geometry.Feature
	FeatureCollection = geometry.FeatureCollection
)

// Wrapped SDK shapes that surface through helper signatures.
type (
	AreaOfInterest  = types.AreaOfInterest
	PropertyFilters = types.PropertyFilters
	ItemSource      = types.ItemSource
	JobStatus       = types.EarthObservationJobStatus
)

// Constructors re-exported for single-import callers.
var (
	NewClient = client.New

	WithRegion            = client.WithRegion
	WithStaticCredentials = client.WithStaticCredentials
	WithProfile           = client.WithProfile

	AOIFromBounds       = geometry.AOIFromBounds
	AOIFromPolygon      = geometry.AOIFromPolygon
	AOIFromMultiPolygon = geometry.AOIFromMultiPolygon
	PolygonFromBounds   = geometry.PolygonFromBounds
	PolygonFromRing     = geometry.PolygonFromRing

	LastDays = models.LastDays

	RandomResultKey = export.RandomResultKey
)

// NewImageryService constructs an imagery service over any implementation of
// the wrapped API, mock included.
var NewImageryService = imagery.NewService

// NewJobsService constructs a jobs service over any implementation of the
// wrapped API.
var NewJobsService = jobs.NewService
