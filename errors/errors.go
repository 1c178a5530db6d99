/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidCredentials is returned when credential input is malformed,
	// for example an access key supplied without its secret.
	ErrInvalidCredentials = errors.New("invalid credentials: access key and secret key must both be provided")

	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyRegistered is returned when registering a key that already exists
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrJobFailed is returned when an analysis job reaches a terminal
	// non-success status
	ErrJobFailed = errors.New("job failed")
)

// CredentialError represents malformed credential input
type CredentialError struct {
	Reason string
}

func (e *CredentialError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid credentials: %s", e.Reason)
	}
	return ErrInvalidCredentials.Error()
}

func (e *CredentialError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// JobFailureError represents an analysis job that ended in a terminal
// non-success status
type JobFailureError struct {
	ARN     string
	Status  string
	Message string
}

func (e *JobFailureError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("job %s ended with status %s: %s", e.ARN, e.Status, e.Message)
	}
	return fmt.Sprintf("job %s ended with status %s", e.ARN, e.Status)
}

func (e *JobFailureError) Is(target error) bool {
	return target == ErrJobFailed
}

// Helper functions for creating errors

// NewCredentialError creates a new CredentialError
func NewCredentialError(reason string) error {
	return &CredentialError{Reason: reason}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resourceType, key string) error {
	return &NotFoundError{Type: resourceType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewJobFailureError creates a new JobFailureError
func NewJobFailureError(arn, status, message string) error {
	return &JobFailureError{ARN: arn, Status: status, Message: message}
}

// IsInvalidCredentials checks if an error is a credential error
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsJobFailed checks if an error is a job failure error
func IsJobFailed(err error) bool {
	return errors.Is(err, ErrJobFailed)
}
