/*
Package geoapi defines the narrow interfaces this library needs from the
wrapped geospatial client and from S3 presigning.

The services in imagery, jobs, export, and vector accept these interfaces
rather than the concrete SDK clients, so unit tests can run against the
mock implementations in geoapi/mock without network access.
*/
package geoapi
