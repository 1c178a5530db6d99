/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package geoengine

import (
	"fmt"
	"sync"

	"github.com/suparena/geoengine/client"
	gerrors "github.com/suparena/geoengine/errors"
)

// Sessions manages a collection of named client sessions, one per account,
// region, or credential set.
type Sessions interface {
	// RegisterSession registers a client under a given key (for example, "prod" or "us-west-2").
	RegisterSession(key string, c *client.Client) error
	// GetSession retrieves the registered client for a given key.
	GetSession(key string) (*client.Client, error)
	// RemoveSession drops the registered client for a given key.
	RemoveSession(key string) error
	// ListSessions returns all registered session keys.
	ListSessions() []string
}

// sessionManager is a thread-safe implementation of the Sessions interface.
type sessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*client.Client
}

// NewSessionManager creates and returns a new Sessions implementation.
func NewSessionManager() Sessions {
	return &sessionManager{
		sessions: make(map[string]*client.Client),
	}
}

// RegisterSession stores the provided client under the given key.
func (sm *sessionManager) RegisterSession(key string, c *client.Client) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[key]; exists {
		return fmt.Errorf("session with key %q: %w", key, gerrors.ErrAlreadyRegistered)
	}
	sm.sessions[key] = c
	return nil
}

// GetSession retrieves the client associated with the given key.
func (sm *sessionManager) GetSession(key string) (*client.Client, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	c, exists := sm.sessions[key]
	if !exists {
		return nil, fmt.Errorf("session with key %q not found", key)
	}
	return c, nil
}

// RemoveSession drops the client associated with the given key.
func (sm *sessionManager) RemoveSession(key string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[key]; !exists {
		return fmt.Errorf("session with key %q not found", key)
	}
	delete(sm.sessions, key)
	return nil
}

// ListSessions returns all registered session keys.
func (sm *sessionManager) ListSessions() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := make([]string, 0, len(sm.sessions))
	for k := range sm.sessions {
		keys = append(keys, k)
	}
	return keys
}
