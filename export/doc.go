/*
Package export moves finished job results into S3 and hands out
time-limited links to the exported artifacts.

	out, err := svc.Start(ctx, models.ExportOptions{
	    JobARN:           jobArn,
	    ExecutionRoleARN: roleArn,
	    S3URI:            "s3://results-bucket/" + export.RandomResultKey("ndvi"),
	})

	url, err := svc.PresignResult(ctx, "results-bucket", key, 15*time.Minute)
*/
package export
