/*
Package jobs starts and tracks the wrapped client's earth observation jobs.

Each analysis type has a typed config record that flattens into the
wrapped client's job-config union:

	out, err := svc.Start(ctx, jobs.StartInput{
	    Name:             "june-ndvi",
	    ExecutionRoleARN: roleArn,
	    Collection:       collectionArn,
	    TimeRange:        models.TimeRange{Start: start, End: end},
	    Config: jobs.BandMath{
	        PredefinedIndices: []string{"NDVI"},
	    },
	})

Jobs run remotely; WaitForCompletion polls until a terminal status:

	final, err := svc.WaitForCompletion(ctx, *out.Arn,
	    jobs.WithPollInterval(15*time.Second),
	)

Listing supports status, ordering, and client-side time filters through a
fluent builder:

	recent, err := svc.List().
	    WithStatus(types.EarthObservationJobStatusCompleted).
	    InLastDays(7).
	    Latest().
	    Execute(ctx)
*/
package jobs
