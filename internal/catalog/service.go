// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/guildboard/internal/platform/apperr"
	"github.com/taibuivan/guildboard/internal/platform/validate"
)

// Limits applied to incoming filter input.
const (
	MaxSearchTermLength = 200
	MaxCategoryLength   = 64
)

// Field identifiers used in validation errors.
const (
	FieldSearchTerm = "q"
	FieldCategory   = "filter"
)

// # Service Layer

// Service couples the record store with its data source and runs the pipeline
// against the current collection.
type Service struct {
	source      Source
	store       *Store
	logger      *slog.Logger
	loadTimeout time.Duration

	// loadMu serializes load attempts so they never interleave.
	loadMu sync.Mutex
}

// NewService constructs a new catalog [Service].
func NewService(source Source, store *Store, loadTimeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		source:      source,
		store:       store,
		logger:      logger,
		loadTimeout: loadTimeout,
	}
}

// # Loading

/*
Load performs one load attempt and installs its result in the store.

A failure empties the collection and is not retried; a later call is a new,
independent attempt. An attempt abandoned by the caller (ctx cancelled) is not a
failure of the source and leaves the store untouched.

Returns:
  - error: *LoadError when the source failed
*/
func (service *Service) Load(ctx context.Context) error {
	service.loadMu.Lock()
	defer service.loadMu.Unlock()

	caller := ctx
	if service.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, service.loadTimeout)
		defer cancel()
	}

	startTime := time.Now()
	records, err := service.source.Load(ctx)
	if err != nil {
		loadErr := &LoadError{Source: service.source.Name(), Err: err}
		if errors.Is(caller.Err(), context.Canceled) {
			service.logger.Warn("catalog_load_aborted",
				slog.String("source", service.source.Name()),
				slog.Any("error", err),
			)
			return loadErr
		}

		service.store.Fail(loadErr)
		service.logger.Error("catalog_load_failed",
			slog.String("source", service.source.Name()),
			slog.Any("error", err),
		)
		return loadErr
	}

	service.store.Replace(records)
	service.logger.Info("catalog_loaded",
		slog.String("source", service.source.Name()),
		slog.Int("records", len(records)),
		slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// Status reports the state of the last load attempt.
func (service *Service) Status() Snapshot {
	return service.store.Snapshot()
}

// # Queries

/*
View runs the full pipeline for state against the current collection.

A failed load yields the load-failed view; a pending load behaves like an empty
collection.

Returns:
  - View: the view model to paint
  - error: VALIDATION_ERROR when the filter input exceeds its limits
*/
func (service *Service) View(state FilterState) (View, error) {
	if err := validateState(state); err != nil {
		return View{}, err
	}

	snapshot := service.store.Snapshot()
	if snapshot.Status == StatusFailed {
		return LoadFailedView(), nil
	}

	return Run(snapshot.Records, state), nil
}

/*
Records returns the raw records matching state, without grouping.

Returns:
  - []Record: matching records in load order
  - error: VALIDATION_ERROR for oversized input, CATALOG_UNAVAILABLE after a failed load
*/
func (service *Service) Records(state FilterState) ([]Record, error) {
	if err := validateState(state); err != nil {
		return nil, err
	}

	snapshot := service.store.Snapshot()
	if snapshot.Status == StatusFailed {
		return nil, apperr.CatalogUnavailable(MessageLoadFailed, snapshot.Err)
	}

	records := Filter(snapshot.Records, state)
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func validateState(state FilterState) error {
	validator := &validate.Validator{}
	return validator.
		MaxLen(FieldSearchTerm, state.SearchTerm, MaxSearchTermLength).
		MaxLen(FieldCategory, state.Category, MaxCategoryLength).
		Err()
}
