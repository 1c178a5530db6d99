/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geometry

import (
	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
	"github.com/go-openapi/strfmt"
)

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
type Feature struct {
	Type       string                 `json:"type" yaml:"type"`
	ID         string                 `json:"id,omitempty" yaml:"id,omitempty"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
}

// Geometry represents the geometry of a feature (Point, Polygon, etc.).
type Geometry struct {
	Type        string        `json:"type" yaml:"type"`
	Coordinates [][][]float64 `json:"coordinates" yaml:"coordinates"`
}

// FeatureFromItem converts one raster search result into a GeoJSON feature.
// Scene properties that the wrapped client reports (cloud cover, platform,
// view angles) are copied into the feature's property map.
func FeatureFromItem(item types.ItemSource) Feature {
	f := Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{},
	}
	if item.Id != nil {
		f.ID = *item.Id
	}
	if item.Geometry != nil {
		f.Geometry = Geometry{
			Coordinates: item.Geometry.Coordinates,
		}
		if item.Geometry.Type != nil {
			f.Geometry.Type = *item.Geometry.Type
		}
	}
	if item.DateTime != nil {
		f.Properties["datetime"] = strfmt.DateTime(*item.DateTime)
	}
	if p := item.Properties; p != nil {
		if p.EoCloudCover != nil {
			f.Properties["eo:cloud_cover"] = *p.EoCloudCover
		}
		if p.LandsatCloudCoverLand != nil {
			f.Properties["landsat:cloud_cover_land"] = *p.LandsatCloudCoverLand
		}
		if p.Platform != nil {
			f.Properties["platform"] = *p.Platform
		}
		if p.ViewOffNadir != nil {
			f.Properties["view:off_nadir"] = *p.ViewOffNadir
		}
		if p.ViewSunAzimuth != nil {
			f.Properties["view:sun_azimuth"] = *p.ViewSunAzimuth
		}
		if p.ViewSunElevation != nil {
			f.Properties["view:sun_elevation"] = *p.ViewSunElevation
		}
	}
	for name, asset := range item.Assets {
		if asset.Href != nil {
			f.Properties["asset:"+name] = *asset.Href
		}
	}
	return f
}

// CollectionFromItems converts a page of raster search results into a
// GeoJSON feature collection.
func CollectionFromItems(items []types.ItemSource) FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(items)),
	}
	for _, item := range items {
		fc.Features = append(fc.Features, FeatureFromItem(item))
	}
	return fc
}
