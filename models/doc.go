/*
Package models defines the plain option records and streaming types used
throughout geoengine.

The records here are deliberately thin: they carry caller-supplied values,
are validated superficially (presence and shape checks), and are then
flattened into the wrapped geospatial client's input structs.

TimeRange and BoundingBox:

	tr := models.TimeRange{Start: start, End: end}
	filter, err := tr.ToFilter() // *types.TimeRangeFilterInput

ExportOptions:

	opts := models.ExportOptions{
	    JobARN:           jobArn,
	    ExecutionRoleARN: roleArn,
	    S3URI:            "s3://my-bucket/results/",
	}

Streaming configuration uses functional options:

	results := svc.Stream(ctx, arn, query,
	    models.WithBufferSize(50),
	    models.WithMaxRetries(5),
	    models.WithProgressHandler(progressFunc),
	)
*/
package models
