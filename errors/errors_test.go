/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"testing"
)

func TestCredentialError(t *testing.T) {
	err := NewCredentialError("access key supplied without secret key")

	expected := "invalid credentials: access key supplied without secret key"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Error("CredentialError should match ErrInvalidCredentials")
	}

	if !IsInvalidCredentials(err) {
		t.Error("IsInvalidCredentials should return true for CredentialError")
	}
}

func TestCredentialErrorDefaultMessage(t *testing.T) {
	err := NewCredentialError("")
	if err.Error() != ErrInvalidCredentials.Error() {
		t.Errorf("Expected sentinel message, got %q", err.Error())
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Collection", "sentinel-2-l2a")

	expected := `Collection with key "sentinel-2-l2a" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "WithField",
			field:    "S3URI",
			message:  "must start with s3://",
			expected: `validation failed for field "S3URI": must start with s3://`,
		},
		{
			name:     "WithoutField",
			field:    "",
			message:  "time range start must precede end",
			expected: "validation failed: time range start must precede end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, err.Error())
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError should return true")
			}
		})
	}
}

func TestJobFailureError(t *testing.T) {
	err := NewJobFailureError("arn:aws:sagemaker-geospatial:us-west-2:123:eoj/abc", "FAILED", "input query matched no scenes")

	if !errors.Is(err, ErrJobFailed) {
		t.Error("JobFailureError should match ErrJobFailed")
	}
	if !IsJobFailed(err) {
		t.Error("IsJobFailed should return true for JobFailureError")
	}

	var jfe *JobFailureError
	if !errors.As(err, &jfe) {
		t.Fatal("errors.As should extract JobFailureError")
	}
	if jfe.Status != "FAILED" {
		t.Errorf("Expected status FAILED, got %s", jfe.Status)
	}
}

func TestJobFailureErrorWithoutMessage(t *testing.T) {
	err := NewJobFailureError("arn:x", "STOPPED", "")
	expected := "job arn:x ended with status STOPPED"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}
