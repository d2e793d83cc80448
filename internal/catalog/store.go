// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"sync"
	"time"
)

// # Record Store

// LoadStatus describes the outcome of the most recent load attempt.
type LoadStatus string

const (
	// StatusPending means no load attempt has finished yet.
	StatusPending LoadStatus = "pending"
	// StatusReady means the last attempt succeeded.
	StatusReady LoadStatus = "ready"
	// StatusFailed means the last attempt failed; the collection is empty.
	StatusFailed LoadStatus = "failed"
)

// Snapshot is a consistent read of the store.
//
// Records must be treated as read-only; the store replaces the slice wholesale
// and never writes into it.
type Snapshot struct {
	Records  []Record
	Status   LoadStatus
	Err      error
	LoadedAt time.Time
}

// Store holds the most recently loaded record collection.
//
// # Concurrency
//
// Store is safe for concurrent readers. Writers replace the whole collection,
// so the latest write wins.
type Store struct {
	mu       sync.RWMutex
	records  []Record
	status   LoadStatus
	err      error
	loadedAt time.Time
}

// NewStore returns an empty store in [StatusPending].
func NewStore() *Store {
	return &Store{status: StatusPending}
}

// Replace installs a freshly loaded collection.
func (store *Store) Replace(records []Record) {
	owned := make([]Record, len(records))
	copy(owned, records)

	store.mu.Lock()
	defer store.mu.Unlock()

	store.records = owned
	store.status = StatusReady
	store.err = nil
	store.loadedAt = time.Now()
}

// Fail records a failed load attempt and drops the collection.
func (store *Store) Fail(err error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.records = nil
	store.status = StatusFailed
	store.err = err
	store.loadedAt = time.Now()
}

// Snapshot returns the current collection and load status.
func (store *Store) Snapshot() Snapshot {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return Snapshot{
		Records:  store.records,
		Status:   store.status,
		Err:      store.err,
		LoadedAt: store.loadedAt,
	}
}
