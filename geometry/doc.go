/*
Package geometry builds the wrapped client's geometry inputs from plain
coordinate data and converts search results to GeoJSON.

Construction helpers:

	aoi, err := geometry.AOIFromBounds(models.BoundingBox{
	    West: -122.5, South: 37.2, East: -121.8, North: 37.9,
	})

	poly, err := geometry.PolygonFromRing([][]float64{
	    {-122.5, 37.2}, {-121.8, 37.2}, {-121.8, 37.9},
	})

Rings are closed automatically and validated against EPSG:4326 bounds.
The GeoJSON types mirror the standard structure so exported feature
collections can be consumed by downstream tooling unchanged.
*/
package geometry
