/*
Package vector starts and tracks vector enrichment jobs over CSV inputs.

	out, err := svc.ReverseGeocode(ctx, "stores-geocode", roleArn,
	    vector.CSVSource{S3URI: "s3://inputs/stores.csv"},
	    "longitude", "latitude",
	)
*/
package vector
