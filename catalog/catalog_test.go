/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suparena/geoengine/errors"
)

func TestRegisterAndResolve(t *testing.T) {
	Register("test-resolve-landsat", "arn:aws:sagemaker-geospatial:us-west-2:aws:raster-data-collection/public/landsat")

	arn, err := Resolve("test-resolve-landsat")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !strings.HasSuffix(arn, "/landsat") {
		t.Errorf("unexpected ARN: %s", arn)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("no-such-collection")
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", "arn:1")
	Register("test-dup", "arn:2")
}

func TestNamesSorted(t *testing.T) {
	Register("test-names-b", "arn:b")
	Register("test-names-a", "arn:a")

	names := Names()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "test-names-a":
			ia = i
		case "test-names-b":
			ib = i
		}
	}
	if ia == -1 || ib == -1 || ia > ib {
		t.Errorf("expected sorted names containing both entries, got %v", names)
	}
}

func TestLoadCatalog(t *testing.T) {
	doc := `
collections:
  - name: test-load-sentinel-1
    arn: arn:aws:sagemaker-geospatial:us-west-2:aws:raster-data-collection/public/s1
    description: Sentinel-1 SAR
    updatedAt: 2024-06-01T00:00:00Z
  - name: test-load-sentinel-2
    arn: arn:aws:sagemaker-geospatial:us-west-2:aws:raster-data-collection/public/s2
`
	n, err := LoadCatalog(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 entries, got %d", n)
	}

	e, ok := Lookup("test-load-sentinel-1")
	if !ok {
		t.Fatal("entry not registered")
	}
	if e.Description != "Sentinel-1 SAR" {
		t.Errorf("unexpected description: %q", e.Description)
	}
	if e.UpdatedAt == nil {
		t.Error("expected updatedAt to be parsed")
	}
}

func TestLoadCatalogMissingFields(t *testing.T) {
	doc := `
collections:
  - name: test-load-incomplete
`
	_, err := LoadCatalog(strings.NewReader(doc))
	if !errors.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoadCatalogIsAtomic(t *testing.T) {
	t.Run("ValidationFailure", func(t *testing.T) {
		doc := `
collections:
  - name: test-atomic-ok
    arn: arn:aws:sagemaker-geospatial:us-west-2:aws:raster-data-collection/public/ok
  - name: test-atomic-bad
`
		_, err := LoadCatalog(strings.NewReader(doc))
		if !errors.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if _, ok := Lookup("test-atomic-ok"); ok {
			t.Error("failed load must not register earlier entries")
		}
	})

	t.Run("InFileDuplicate", func(t *testing.T) {
		doc := `
collections:
  - name: test-atomic-dup
    arn: arn:1
  - name: test-atomic-dup
    arn: arn:2
`
		_, err := LoadCatalog(strings.NewReader(doc))
		if !errors.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if _, ok := Lookup("test-atomic-dup"); ok {
			t.Error("failed load must not register earlier entries")
		}
	})

	t.Run("RegistryClash", func(t *testing.T) {
		Register("test-atomic-existing", "arn:existing")
		doc := `
collections:
  - name: test-atomic-fresh
    arn: arn:fresh
  - name: test-atomic-existing
    arn: arn:other
`
		_, err := LoadCatalog(strings.NewReader(doc))
		if !stderrors.Is(err, errors.ErrAlreadyRegistered) {
			t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
		}
		if _, ok := Lookup("test-atomic-fresh"); ok {
			t.Error("failed load must not register earlier entries")
		}
		if arn, _ := Resolve("test-atomic-existing"); arn != "arn:existing" {
			t.Errorf("existing entry must be untouched, got %q", arn)
		}
	})
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
collections:
  - name: test-load-file
    arn: arn:aws:sagemaker-geospatial:us-west-2:aws:raster-data-collection/public/file
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	n, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 entry, got %d", n)
	}

	if _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
