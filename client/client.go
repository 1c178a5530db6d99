/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"

	gerrors "github.com/suparena/geoengine/errors"
	"github.com/suparena/geoengine/export"
	"github.com/suparena/geoengine/imagery"
	"github.com/suparena/geoengine/jobs"
	"github.com/suparena/geoengine/vector"
)

// Options controls client construction. Credential inputs are mutually
// exclusive and resolved in a fixed priority order:
//
//  1. explicit AccessKeyID/SecretAccessKey pair
//  2. named shared-config profile
//  3. caller-supplied credentials provider
//  4. the default chain (pre-authenticated environment)
type Options struct {
	// Region is the service region, e.g. "us-west-2".
	Region string
	// AccessKeyID and SecretAccessKey form an explicit static credential pair.
	AccessKeyID     string
	SecretAccessKey string
	// SessionToken optionally accompanies the static pair.
	SessionToken string
	// Profile names a shared-config profile.
	Profile string
	// CredentialsProvider is an externally supplied token source.
	CredentialsProvider aws.CredentialsProvider
	// BaseEndpoint overrides the geospatial service endpoint.
	BaseEndpoint string
	// S3BaseEndpoint overrides the S3 endpoint (e.g. a MinIO deployment).
	S3BaseEndpoint string
	// Probe performs a cheap list call after construction so that
	// authentication failures surface at initialization time.
	Probe bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithRegion sets the service region.
func WithRegion(region string) Option {
	return func(o *Options) { o.Region = region }
}

// WithStaticCredentials sets an explicit credential pair.
func WithStaticCredentials(accessKeyID, secretAccessKey string) Option {
	return func(o *Options) {
		o.AccessKeyID = accessKeyID
		o.SecretAccessKey = secretAccessKey
	}
}

// WithSessionToken sets the session token accompanying a static pair.
func WithSessionToken(token string) Option {
	return func(o *Options) { o.SessionToken = token }
}

// WithProfile selects a shared-config profile.
func WithProfile(profile string) Option {
	return func(o *Options) { o.Profile = profile }
}

// WithCredentialsProvider supplies an external token source.
func WithCredentialsProvider(p aws.CredentialsProvider) Option {
	return func(o *Options) { o.CredentialsProvider = p }
}

// WithBaseEndpoint overrides the geospatial service endpoint.
func WithBaseEndpoint(endpoint string) Option {
	return func(o *Options) { o.BaseEndpoint = endpoint }
}

// WithS3BaseEndpoint overrides the S3 endpoint.
func WithS3BaseEndpoint(endpoint string) Option {
	return func(o *Options) { o.S3BaseEndpoint = endpoint }
}

// WithProbe enables the post-construction probe call.
func WithProbe() Option {
	return func(o *Options) { o.Probe = true }
}

// Client bundles the wrapped geospatial client with the S3 clients used by
// export helpers. All domain logic lives in the wrapped clients; Client only
// owns construction and accessor plumbing.
type Client struct {
	geo     *sdk.Client
	s3      *s3.Client
	presign *s3.PresignClient
	region  string
}

// New authenticates and initializes a Client. Credentials resolve in the
// priority order documented on Options; the first error from either the
// configuration step or the probe step is returned.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	loadOpts, err := o.credentialLoadOptions()
	if err != nil {
		return nil, err
	}
	if o.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	geo := sdk.NewFromConfig(cfg, func(so *sdk.Options) {
		if o.BaseEndpoint != "" {
			so.BaseEndpoint = aws.String(o.BaseEndpoint)
		}
	})
	s3c := s3.NewFromConfig(cfg, func(so *s3.Options) {
		if o.S3BaseEndpoint != "" {
			so.BaseEndpoint = aws.String(o.S3BaseEndpoint)
		}
	})

	c := &Client{
		geo:     geo,
		s3:      s3c,
		presign: s3.NewPresignClient(s3c),
		region:  cfg.Region,
	}

	if o.Probe {
		_, err := geo.ListRasterDataCollections(ctx, &sdk.ListRasterDataCollectionsInput{
			MaxResults: aws.Int32(1),
		})
		if err != nil {
			return nil, fmt.Errorf("initialization probe failed: %w", err)
		}
	}

	return c, nil
}

// credentialLoadOptions applies the credential priority order.
func (o *Options) credentialLoadOptions() ([]func(*config.LoadOptions) error, error) {
	switch {
	case o.AccessKeyID != "" || o.SecretAccessKey != "":
		if o.AccessKeyID == "" || o.SecretAccessKey == "" {
			return nil, gerrors.NewCredentialError("access key and secret key must both be provided")
		}
		return []func(*config.LoadOptions) error{
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.SecretAccessKey, o.SessionToken),
			),
		}, nil
	case o.Profile != "":
		return []func(*config.LoadOptions) error{
			config.WithSharedConfigProfile(o.Profile),
		}, nil
	case o.CredentialsProvider != nil:
		return []func(*config.LoadOptions) error{
			config.WithCredentialsProvider(o.CredentialsProvider),
		}, nil
	default:
		// Pre-authenticated environment; the default chain applies.
		return nil, nil
	}
}

// Geospatial returns the wrapped geospatial client.
func (c *Client) Geospatial() *sdk.Client { return c.geo }

// S3 returns the S3 client.
func (c *Client) S3() *s3.Client { return c.s3 }

// Presign returns the S3 presign client.
func (c *Client) Presign() *s3.PresignClient { return c.presign }

// Region returns the resolved region.
func (c *Client) Region() string { return c.region }

// Imagery returns an imagery service bound to this client.
func (c *Client) Imagery() *imagery.Service { return imagery.NewService(c.geo) }

// Jobs returns an analysis job service bound to this client.
func (c *Client) Jobs() *jobs.Service { return jobs.NewService(c.geo) }

// Export returns an export service bound to this client.
func (c *Client) Export() *export.Service { return export.NewService(c.geo, c.presign) }

// Vector returns a vector enrichment service bound to this client.
func (c *Client) Vector() *vector.Service { return vector.NewService(c.geo) }
