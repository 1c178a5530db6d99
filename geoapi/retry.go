package geoapi

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/sagemakergeospatial/types"
)

// IsTransient determines if a wrapped-client error is worth retrying.
func IsTransient(err error) bool {
	var throttling *types.ThrottlingException
	if errors.As(err, &throttling) {
		return true
	}
	var internal *types.InternalServerException
	if errors.As(err, &internal) {
		return true
	}

	// Check for AWS SDK retryable errors
	var retryable interface{ IsRetryable() bool }
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}

	return false
}
