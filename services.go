/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geoengine

import (
	"fmt"
	"reflect"
	"sync"

	gerrors "github.com/suparena/geoengine/errors"
)

// TypedRegistry provides type-safe registration for a specific service type T
type TypedRegistry[T any] struct {
	mu       sync.RWMutex
	services map[string]T
}

// NewTypedRegistry creates a new TypedRegistry for type T
func NewTypedRegistry[T any]() *TypedRegistry[T] {
	return &TypedRegistry[T]{
		services: make(map[string]T),
	}
}

// Register adds a service with the given key
func (tr *TypedRegistry[T]) Register(key string, svc T) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.services[key]; exists {
		return fmt.Errorf("service with key %q: %w", key, gerrors.ErrAlreadyRegistered)
	}

	tr.services[key] = svc
	return nil
}

// Get retrieves a service by key
func (tr *TypedRegistry[T]) Get(key string) (T, error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	svc, exists := tr.services[key]
	if !exists {
		var zero T
		return zero, fmt.Errorf("service with key %q not found", key)
	}

	return svc, nil
}

// Remove deletes a service by key
func (tr *TypedRegistry[T]) Remove(key string) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.services[key]; !exists {
		return fmt.Errorf("service with key %q not found", key)
	}

	delete(tr.services, key)
	return nil
}

// List returns all registered service keys
func (tr *TypedRegistry[T]) List() []string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	keys := make([]string, 0, len(tr.services))
	for k := range tr.services {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeRegistry manages TypedRegistry instances for different service types
type MultiTypeRegistry struct {
	mu         sync.RWMutex
	registries map[reflect.Type]interface{}
}

// NewMultiTypeRegistry creates a new MultiTypeRegistry
func NewMultiTypeRegistry() *MultiTypeRegistry {
	return &MultiTypeRegistry{
		registries: make(map[reflect.Type]interface{}),
	}
}

// GetTypedRegistry returns a TypedRegistry for the specified type, creating it if necessary
func GetTypedRegistry[T any](mtr *MultiTypeRegistry) *TypedRegistry[T] {
	mtr.mu.Lock()
	defer mtr.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(&zero).Elem()

	if registry, exists := mtr.registries[typ]; exists {
		return registry.(*TypedRegistry[T])
	}

	newRegistry := NewTypedRegistry[T]()
	mtr.registries[typ] = newRegistry
	return newRegistry
}

// RegisterService is a convenience function to register a service for type T
func RegisterService[T any](mtr *MultiTypeRegistry, key string, svc T) error {
	registry := GetTypedRegistry[T](mtr)
	return registry.Register(key, svc)
}

// GetService is a convenience function to get a service for type T
func GetService[T any](mtr *MultiTypeRegistry, key string) (T, error) {
	registry := GetTypedRegistry[T](mtr)
	return registry.Get(key)
}

// RemoveService is a convenience function to remove a service for type T
func RemoveService[T any](mtr *MultiTypeRegistry, key string) error {
	registry := GetTypedRegistry[T](mtr)
	return registry.Remove(key)
}

// ListServices is a convenience function to list all services for type T
func ListServices[T any](mtr *MultiTypeRegistry) []string {
	registry := GetTypedRegistry[T](mtr)
	return registry.List()
}
