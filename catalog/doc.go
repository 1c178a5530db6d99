/*
Package catalog maps friendly raster collection names to the ARNs the
wrapped client requires.

Collections can be registered in code:

	catalog.Register("sentinel-2-l2a", "arn:aws:sagemaker-geospatial:...:raster-data-collection/public/abc")

or loaded from a YAML file:

	collections:
	  - name: sentinel-2-l2a
	    arn: arn:aws:sagemaker-geospatial:...:raster-data-collection/public/abc
	    description: Sentinel-2 L2A surface reflectance

Duplicate registration panics, matching the process-wide registries used
elsewhere in Suparena libraries.
*/
package catalog
