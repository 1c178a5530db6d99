/*
Package geoengine provides a typed convenience layer over AWS SageMaker
geospatial, wrapping raw SDK calls with validated option records, fluent
builders, and channel-based streaming.

The library follows an authenticate → initialize → forward workflow:
  - Authenticate: resolve credentials (explicit pair, profile, custom
    provider, or the ambient default chain)
  - Initialize: construct the wrapped geospatial and S3 clients
  - Forward: typed helpers flatten into raw SDK calls; service errors
    come back verbatim, wrapped for inspection with errors.Is/As

Key Features:
  - Fixed credential resolution order with validated static pairs
  - Fluent search and listing builders over raster data collections
  - Typed analysis job configs that flatten into the SDK's config unions
  - Channel streaming with retry logic and progress tracking
  - Export to S3 with presigned result links
  - Semantic error types for better error handling
  - Thread-safe session and service registries
  - Comprehensive mock implementations for testing

Basic Usage:

	// Authenticate and initialize a client
	c, err := client.New(ctx,
	    client.WithRegion("us-west-2"),
	    client.WithStaticCredentials(accessKey, secretKey),
	)

	// Search imagery through the fluent builder
	items, err := c.Imagery().Query().
	    WithCollectionName("sentinel-2").
	    WithTimeRange(models.LastDays(30)).
	    WithCloudCoverBetween(0, 20).
	    Execute(ctx)

	// Start an analysis job and wait for it
	out, err := c.Jobs().Start(ctx, jobs.StartInput{...})
	final, err := c.Jobs().WaitForCompletion(ctx, *out.Arn)

For more information, see the documentation at https://github.com/suparena/geoengine
*/
package geoengine
