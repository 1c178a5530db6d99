/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geometry

import (
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/suparena/geoengine/errors"
	"github.com/suparena/geoengine/models"
)

// PolygonFromBounds builds a closed polygon ring from a bounding box.
// The ring is counter-clockwise starting at the south-west corner.
func PolygonFromBounds(b models.BoundingBox) (*types.PolygonGeometryInput, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	ring := [][]float64{
		{b.West, b.South},
		{b.East, b.South},
		{b.East, b.North},
		{b.West, b.North},
		{b.West, b.South},
	}
	return &types.PolygonGeometryInput{
		Coordinates: [][][]float64{ring},
	}, nil
}

// PolygonFromRing builds a polygon from a single exterior ring of
// [lon, lat] pairs. The ring is closed automatically if needed.
func PolygonFromRing(ring [][]float64) (*types.PolygonGeometryInput, error) {
	closed, err := closeRing(ring)
	if err != nil {
		return nil, err
	}
	return &types.PolygonGeometryInput{
		Coordinates: [][][]float64{closed},
	}, nil
}

// MultiPolygonFromRings builds a multi-polygon where each argument is the
// exterior ring of one polygon.
func MultiPolygonFromRings(rings ...[][]float64) (*types.MultiPolygonGeometryInput, error) {
	if len(rings) == 0 {
		return nil, errors.NewValidationError("rings", "at least one ring is required")
	}
	coords := make([][][][]float64, 0, len(rings))
	for _, ring := range rings {
		closed, err := closeRing(ring)
		if err != nil {
			return nil, err
		}
		coords = append(coords, [][][]float64{closed})
	}
	return &types.MultiPolygonGeometryInput{Coordinates: coords}, nil
}

// AOIFromPolygon wraps a polygon into the area-of-interest union the
// wrapped client expects.
func AOIFromPolygon(p *types.PolygonGeometryInput) types.AreaOfInterest {
	return &types.AreaOfInterestMemberAreaOfInterestGeometry{
		Value: &types.AreaOfInterestGeometryMemberPolygonGeometry{Value: *p},
	}
}

// AOIFromMultiPolygon wraps a multi-polygon into the area-of-interest union.
func AOIFromMultiPolygon(mp *types.MultiPolygonGeometryInput) types.AreaOfInterest {
	return &types.AreaOfInterestMemberAreaOfInterestGeometry{
		Value: &types.AreaOfInterestGeometryMemberMultiPolygonGeometry{Value: *mp},
	}
}

// AOIFromBounds is the common shortcut from a bounding box straight to an
// area of interest.
func AOIFromBounds(b models.BoundingBox) (types.AreaOfInterest, error) {
	p, err := PolygonFromBounds(b)
	if err != nil {
		return nil, err
	}
	return AOIFromPolygon(p), nil
}

func closeRing(ring [][]float64) ([][]float64, error) {
	if len(ring) < 3 {
		return nil, errors.NewValidationError("ring", "a polygon ring needs at least 3 distinct points")
	}
	for _, pt := range ring {
		if len(pt) != 2 {
			return nil, errors.NewValidationError("ring", "each point must be a [lon, lat] pair")
		}
		if pt[0] < -180 || pt[0] > 180 || pt[1] < -90 || pt[1] > 90 {
			return nil, errors.NewValidationError("ring", "point outside EPSG:4326 bounds")
		}
	}
	first, last := ring[0], ring[len(ring)-1]
	if first[0] == last[0] && first[1] == last[1] {
		// Already closed; the closing point must not be one of the 3 distinct ones.
		if len(ring) < 4 {
			return nil, errors.NewValidationError("ring", "a polygon ring needs at least 3 distinct points")
		}
		return ring, nil
	}
	closed := make([][]float64, len(ring)+1)
	copy(closed, ring)
	closed[len(ring)] = []float64{first[0], first[1]}
	return closed, nil
}
