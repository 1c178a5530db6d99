/*
Package imagery provides typed access to the wrapped client's raster data
collections: listing, metadata lookup, and scene search.

Searches are composed with a fluent builder:

	scenes, err := svc.Query().
	    WithCollection(arn).
	    WithTimeRange(models.LastDays(30)).
	    WithBounds(models.BoundingBox{West: -122.5, South: 37.2, East: -121.8, North: 37.9}).
	    WithCloudCoverBetween(0, 20).
	    Execute(ctx)

Large result sets can be streamed instead of gathered:

	results := svc.Query().
	    WithCollection(arn).
	    WithTimeRange(models.LastDays(365)).
	    Stream(ctx, models.WithBufferSize(50))
	for r := range results {
	    if r.Error != nil {
	        return r.Error
	    }
	    process(r.Item)
	}
*/
package imagery
