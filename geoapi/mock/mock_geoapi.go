/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides mock implementations of the geoapi interfaces for testing
package mock

import (
	"context"
	"sync"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sdk "github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial"
)

// API is a mock implementation of geoapi.GeospatialAPI for testing.
// Each method delegates to the corresponding Func field when set and
// otherwise returns an empty output. Calls are recorded in order.
type API struct {
	mu    sync.Mutex
	calls []string

	ListRasterDataCollectionsFunc  func(ctx context.Context, params *sdk.ListRasterDataCollectionsInput, optFns ...func(*sdk.Options)) (*sdk.ListRasterDataCollectionsOutput, error)
	GetRasterDataCollectionFunc    func(ctx context.Context, params *sdk.GetRasterDataCollectionInput, optFns ...func(*sdk.Options)) (*sdk.GetRasterDataCollectionOutput, error)
	SearchRasterDataCollectionFunc func(ctx context.Context, params *sdk.SearchRasterDataCollectionInput, optFns ...func(*sdk.Options)) (*sdk.SearchRasterDataCollectionOutput, error)

	StartEarthObservationJobFunc  func(ctx context.Context, params *sdk.StartEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.StartEarthObservationJobOutput, error)
	GetEarthObservationJobFunc    func(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error)
	StopEarthObservationJobFunc   func(ctx context.Context, params *sdk.StopEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.StopEarthObservationJobOutput, error)
	DeleteEarthObservationJobFunc func(ctx context.Context, params *sdk.DeleteEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.DeleteEarthObservationJobOutput, error)
	ListEarthObservationJobsFunc  func(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error)
	ExportEarthObservationJobFunc func(ctx context.Context, params *sdk.ExportEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.ExportEarthObservationJobOutput, error)

	StartVectorEnrichmentJobFunc  func(ctx context.Context, params *sdk.StartVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.StartVectorEnrichmentJobOutput, error)
	GetVectorEnrichmentJobFunc    func(ctx context.Context, params *sdk.GetVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.GetVectorEnrichmentJobOutput, error)
	StopVectorEnrichmentJobFunc   func(ctx context.Context, params *sdk.StopVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.StopVectorEnrichmentJobOutput, error)
	ListVectorEnrichmentJobsFunc  func(ctx context.Context, params *sdk.ListVectorEnrichmentJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListVectorEnrichmentJobsOutput, error)
	ExportVectorEnrichmentJobFunc func(ctx context.Context, params *sdk.ExportVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.ExportVectorEnrichmentJobOutput, error)
}

// New creates a new mock API
func New() *API {
	return &API{}
}

// Calls returns the method names invoked so far, in order.
func (m *API) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times the named method was invoked.
func (m *API) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == method {
			n++
		}
	}
	return n
}

func (m *API) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
}

func (m *API) ListRasterDataCollections(ctx context.Context, params *sdk.ListRasterDataCollectionsInput, optFns ...func(*sdk.Options)) (*sdk.ListRasterDataCollectionsOutput, error) {
	m.record("ListRasterDataCollections")
	if m.ListRasterDataCollectionsFunc != nil {
		return m.ListRasterDataCollectionsFunc(ctx, params, optFns...)
	}
	return &sdk.ListRasterDataCollectionsOutput{}, nil
}

func (m *API) GetRasterDataCollection(ctx context.Context, params *sdk.GetRasterDataCollectionInput, optFns ...func(*sdk.Options)) (*sdk.GetRasterDataCollectionOutput, error) {
	m.record("GetRasterDataCollection")
	if m.GetRasterDataCollectionFunc != nil {
		return m.GetRasterDataCollectionFunc(ctx, params, optFns...)
	}
	return &sdk.GetRasterDataCollectionOutput{}, nil
}

func (m *API) SearchRasterDataCollection(ctx context.Context, params *sdk.SearchRasterDataCollectionInput, optFns ...func(*sdk.Options)) (*sdk.SearchRasterDataCollectionOutput, error) {
	m.record("SearchRasterDataCollection")
	if m.SearchRasterDataCollectionFunc != nil {
		return m.SearchRasterDataCollectionFunc(ctx, params, optFns...)
	}
	return &sdk.SearchRasterDataCollectionOutput{}, nil
}

func (m *API) StartEarthObservationJob(ctx context.Context, params *sdk.StartEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.StartEarthObservationJobOutput, error) {
	m.record("StartEarthObservationJob")
	if m.StartEarthObservationJobFunc != nil {
		return m.StartEarthObservationJobFunc(ctx, params, optFns...)
	}
	return &sdk.StartEarthObservationJobOutput{}, nil
}

func (m *API) GetEarthObservationJob(ctx context.Context, params *sdk.GetEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.GetEarthObservationJobOutput, error) {
	m.record("GetEarthObservationJob")
	if m.GetEarthObservationJobFunc != nil {
		return m.GetEarthObservationJobFunc(ctx, params, optFns...)
	}
	return &sdk.GetEarthObservationJobOutput{}, nil
}

func (m *API) StopEarthObservationJob(ctx context.Context, params *sdk.StopEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.StopEarthObservationJobOutput, error) {
	m.record("StopEarthObservationJob")
	if m.StopEarthObservationJobFunc != nil {
		return m.StopEarthObservationJobFunc(ctx, params, optFns...)
	}
	return &sdk.StopEarthObservationJobOutput{}, nil
}

func (m *API) DeleteEarthObservationJob(ctx context.Context, params *sdk.DeleteEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.DeleteEarthObservationJobOutput, error) {
	m.record("DeleteEarthObservationJob")
	if m.DeleteEarthObservationJobFunc != nil {
		return m.DeleteEarthObservationJobFunc(ctx, params, optFns...)
	}
	return &sdk.DeleteEarthObservationJobOutput{}, nil
}

func (m *API) ListEarthObservationJobs(ctx context.Context, params *sdk.ListEarthObservationJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListEarthObservationJobsOutput, error) {
	m.record("ListEarthObservationJobs")
	if m.ListEarthObservationJobsFunc != nil {
		return m.ListEarthObservationJobsFunc(ctx, params, optFns...)
	}
	return &sdk.ListEarthObservationJobsOutput{}, nil
}

func (m *API) ExportEarthObservationJob(ctx context.Context, params *sdk.ExportEarthObservationJobInput, optFns ...func(*sdk.Options)) (*sdk.ExportEarthObservationJobOutput, error) {
	m.record("ExportEarthObservationJob")
	if m.ExportEarthObservationJobFunc != nil {
		return m.ExportEarthObservationJobFunc(ctx, params, optFns...)
	}
	return &sdk.ExportEarthObservationJobOutput{}, nil
}

func (m *API) StartVectorEnrichmentJob(ctx context.Context, params *sdk.StartVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.StartVectorEnrichmentJobOutput, error) {
	m.record("StartVectorEnrichmentJob")
	if m.StartVectorEnrichmentJobFunc != nil {
		return m.StartVectorEnrichmentJobFunc(ctx, params, optFns...)
	}
	return &sdk.StartVectorEnrichmentJobOutput{}, nil
}

func (m *API) GetVectorEnrichmentJob(ctx context.Context, params *sdk.GetVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.GetVectorEnrichmentJobOutput, error) {
	m.record("GetVectorEnrichmentJob")
	if m.GetVectorEnrichmentJobFunc != nil {
		return m.GetVectorEnrichmentJobFunc(ctx, params, optFns...)
	}
	return &sdk.GetVectorEnrichmentJobOutput{}, nil
}

func (m *API) StopVectorEnrichmentJob(ctx context.Context, params *sdk.StopVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.StopVectorEnrichmentJobOutput, error) {
	m.record("StopVectorEnrichmentJob")
	if m.StopVectorEnrichmentJobFunc != nil {
		return m.StopVectorEnrichmentJobFunc(ctx, params, optFns...)
	}
	return &sdk.StopVectorEnrichmentJobOutput{}, nil
}

func (m *API) ListVectorEnrichmentJobs(ctx context.Context, params *sdk.ListVectorEnrichmentJobsInput, optFns ...func(*sdk.Options)) (*sdk.ListVectorEnrichmentJobsOutput, error) {
	m.record("ListVectorEnrichmentJobs")
	if m.ListVectorEnrichmentJobsFunc != nil {
		return m.ListVectorEnrichmentJobsFunc(ctx, params, optFns...)
	}
	return &sdk.ListVectorEnrichmentJobsOutput{}, nil
}

func (m *API) ExportVectorEnrichmentJob(ctx context.Context, params *sdk.ExportVectorEnrichmentJobInput, optFns ...func(*sdk.Options)) (*sdk.ExportVectorEnrichmentJobOutput, error) {
	m.record("ExportVectorEnrichmentJob")
	if m.ExportVectorEnrichmentJobFunc != nil {
		return m.ExportVectorEnrichmentJobFunc(ctx, params, optFns...)
	}
	return &sdk.ExportVectorEnrichmentJobOutput{}, nil
}

// Presigner is a mock implementation of geoapi.S3Presigner for testing
type Presigner struct {
	PresignGetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

func (p *Presigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if p.PresignGetObjectFunc != nil {
		return p.PresignGetObjectFunc(ctx, params, optFns...)
	}
	return &v4.PresignedHTTPRequest{URL: "https://example.com/presigned"}, nil
}
