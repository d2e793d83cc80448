// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/guildboard/internal/catalog"
	"github.com/taibuivan/guildboard/internal/platform/apperr"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// stubSource returns its records, or err when set.
type stubSource struct {
	records []catalog.Record
	err     error
	calls   atomic.Int32
	block   chan struct{}
}

func (source *stubSource) Name() string { return "stub" }

func (source *stubSource) Load(ctx context.Context) ([]catalog.Record, error) {
	source.calls.Add(1)
	if source.block != nil {
		select {
		case <-source.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return source.records, source.err
}

func newService(source catalog.Source) *catalog.Service {
	return catalog.NewService(source, catalog.NewStore(), time.Second, discardLogger)
}

func TestService_PendingIsInert(t *testing.T) {
	service := newService(&stubSource{records: scenarioRecords})

	assert.Equal(t, catalog.StatusPending, service.Status().Status)

	view, err := service.View(catalog.NewFilterState("", "all"))
	require.NoError(t, err)
	assert.Equal(t, catalog.ViewNoResults, view.State)

	records, err := service.Records(catalog.NewFilterState("", "all"))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestService_Load(t *testing.T) {
	source := &stubSource{records: scenarioRecords}
	service := newService(source)

	require.NoError(t, service.Load(context.Background()))
	assert.Equal(t, catalog.StatusReady, service.Status().Status)

	view, err := service.View(catalog.NewFilterState("", "all"))
	require.NoError(t, err)
	assert.Len(t, view.Sections, 3)

	records, err := service.Records(catalog.NewFilterState("cup", "all"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Cup 2024"}, names(records))
}

/*
TestService_LoadFailure empties the collection and paints the failure until a
later attempt succeeds.
*/
func TestService_LoadFailure(t *testing.T) {
	source := &stubSource{records: scenarioRecords}
	service := newService(source)
	require.NoError(t, service.Load(context.Background()))

	cause := errors.New("unreachable")
	source.err = cause

	err := service.Load(context.Background())
	var loadErr *catalog.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "stub", loadErr.Source)
	assert.ErrorIs(t, err, cause)

	snapshot := service.Status()
	assert.Equal(t, catalog.StatusFailed, snapshot.Status)
	assert.Empty(t, snapshot.Records)

	view, err := service.View(catalog.NewFilterState("", "all"))
	require.NoError(t, err)
	assert.Equal(t, catalog.LoadFailedView(), view)

	_, err = service.Records(catalog.NewFilterState("", "all"))
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CATALOG_UNAVAILABLE", appError.Code)
	assert.Equal(t, catalog.MessageLoadFailed, appError.Message)

	// No automatic retry: exactly the two explicit attempts reached the source.
	assert.Equal(t, int32(2), source.calls.Load())

	source.err = nil
	require.NoError(t, service.Load(context.Background()))
	assert.Equal(t, catalog.StatusReady, service.Status().Status)
}

func TestService_LoadTimeout(t *testing.T) {
	source := &stubSource{block: make(chan struct{})}
	service := catalog.NewService(source, catalog.NewStore(), 20*time.Millisecond, discardLogger)

	err := service.Load(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, catalog.StatusFailed, service.Status().Status)
}

/*
TestService_LoadAbandonedByCaller checks that a caller giving up does not count
as a source failure: the previous collection keeps being served.
*/
func TestService_LoadAbandonedByCaller(t *testing.T) {
	source := &stubSource{records: scenarioRecords}
	service := newService(source)
	require.NoError(t, service.Load(context.Background()))

	source.block = make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	snapshot := service.Status()
	assert.Equal(t, catalog.StatusReady, snapshot.Status)
	assert.Len(t, snapshot.Records, len(scenarioRecords))
}

func TestService_Validation(t *testing.T) {
	service := newService(&stubSource{})

	tests := []struct {
		name  string
		state catalog.FilterState
		field string
	}{
		{"search_too_long", catalog.NewFilterState(strings.Repeat("a", catalog.MaxSearchTermLength+1), "all"), catalog.FieldSearchTerm},
		{"category_too_long", catalog.NewFilterState("", strings.Repeat("x", catalog.MaxCategoryLength+1)), catalog.FieldCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.View(tt.state)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Equal(t, tt.field, appError.Details[0].Field)

			_, err = service.Records(tt.state)
			assert.Error(t, err)
		})
	}

	_, err := service.View(catalog.NewFilterState(strings.Repeat("ç", catalog.MaxSearchTermLength), "all"))
	assert.NoError(t, err)
}
