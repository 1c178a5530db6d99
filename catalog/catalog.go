package catalog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/geoengine/errors"
	"gopkg.in/yaml.v3"
)

// Entry describes one raster data collection in a catalog file.
type Entry struct {
	// Name is the friendly name used to resolve the collection, e.g. "sentinel-2-l2a".
	Name string `yaml:"name" json:"name"`
	// ARN is the wrapped service's collection ARN.
	ARN string `yaml:"arn" json:"arn"`
	// Description is free-form.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// UpdatedAt records when the entry was last reviewed.
	UpdatedAt *strfmt.DateTime `yaml:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// catalogFile is the on-disk YAML layout. Timestamps are kept as strings
// and parsed with strfmt so the format matches the rest of the stack.
type catalogFile struct {
	Collections []rawEntry `yaml:"collections"`
}

type rawEntry struct {
	Name        string `yaml:"name"`
	ARN         string `yaml:"arn"`
	Description string `yaml:"description"`
	UpdatedAt   string `yaml:"updatedAt"`
}

var (
	mu      sync.RWMutex
	entries = make(map[string]Entry)
)

// Register associates a friendly collection name with its ARN.
// If the name is already registered, it panics to prevent accidental overrides.
func Register(name, arn string) {
	RegisterEntry(Entry{Name: name, ARN: arn})
}

// RegisterEntry registers a full catalog entry.
func RegisterEntry(e Entry) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := entries[e.Name]; exists {
		panic(fmt.Sprintf("catalog: collection %q already registered", e.Name))
	}
	entries[e.Name] = e
}

// Resolve returns the collection ARN for a friendly name.
func Resolve(name string) (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[name]
	if !ok {
		return "", errors.NewNotFoundError("Collection", name)
	}
	return e.ARN, nil
}

// Lookup returns the full entry for a friendly name.
func Lookup(name string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[name]
	return e, ok
}

// Names returns all registered collection names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadCatalog reads a YAML catalog and registers every entry. The whole
// document is validated before anything is registered, so a failed load
// leaves the registry untouched. It returns the number of entries registered.
func LoadCatalog(r io.Reader) (int, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return 0, fmt.Errorf("failed to decode catalog: %w", err)
	}

	parsed := make([]Entry, 0, len(file.Collections))
	seen := make(map[string]bool, len(file.Collections))
	for i, raw := range file.Collections {
		if raw.Name == "" || raw.ARN == "" {
			return 0, errors.NewValidationError("collections", fmt.Sprintf("entry %d is missing name or arn", i))
		}
		if seen[raw.Name] {
			return 0, errors.NewValidationError("collections", fmt.Sprintf("entry %d: duplicate name %q", i, raw.Name))
		}
		seen[raw.Name] = true
		e := Entry{Name: raw.Name, ARN: raw.ARN, Description: raw.Description}
		if raw.UpdatedAt != "" {
			ts, err := strfmt.ParseDateTime(raw.UpdatedAt)
			if err != nil {
				return 0, errors.NewValidationError("updatedAt", fmt.Sprintf("entry %d: %v", i, err))
			}
			e.UpdatedAt = &ts
		}
		parsed = append(parsed, e)
	}

	mu.Lock()
	defer mu.Unlock()
	for _, e := range parsed {
		if _, exists := entries[e.Name]; exists {
			return 0, fmt.Errorf("collection %q: %w", e.Name, errors.ErrAlreadyRegistered)
		}
	}
	for _, e := range parsed {
		entries[e.Name] = e
	}
	return len(parsed), nil
}

// LoadCatalogFile reads and registers a YAML catalog from disk.
func LoadCatalogFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}
