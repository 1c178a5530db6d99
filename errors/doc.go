/*
Package errors provides semantic error types for the geoengine library.

Two kinds of failure surface from this library: malformed local input
(credentials, option records) reported through the types in this package,
and errors forwarded verbatim from the wrapped geospatial client, which are
wrapped with %w so callers can still unwrap the service error types.

Sentinel checks work through errors.Is:

	job, err := svc.Get(ctx, arn)
	if errors.IsNotFound(err) {
	    // handle missing job
	}

Typed errors carry structured context:

	var jfe *errors.JobFailureError
	if stderrors.As(err, &jfe) {
	    log.Printf("job %s failed: %s", jfe.ARN, jfe.Message)
	}
*/
package errors
