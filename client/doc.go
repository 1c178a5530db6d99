/*
Package client constructs the wrapped geospatial client and binds the
typed services in imagery, jobs, export, and vector to it.

Credential inputs are mutually exclusive and resolve in a fixed priority
order: an explicit static pair, then a named shared-config profile, then a
caller-supplied credentials provider, and finally the default chain for a
pre-authenticated environment. A half-specified static pair is rejected
with errors.ErrInvalidCredentials before any network activity.

	c, err := client.New(ctx,
	    client.WithRegion("us-west-2"),
	    client.WithProfile("geospatial"),
	    client.WithProbe(),
	)
	if err != nil {
	    return err
	}
	scenes, err := c.Imagery().Query().
	    WithCollection(arn).
	    WithTimeRange(models.LastDays(30)).
	    Execute(ctx)
*/
package client
