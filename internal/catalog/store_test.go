// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/guildboard/internal/catalog"
)

func TestStore_Lifecycle(t *testing.T) {
	store := catalog.NewStore()

	snapshot := store.Snapshot()
	assert.Equal(t, catalog.StatusPending, snapshot.Status)
	assert.Empty(t, snapshot.Records)
	assert.True(t, snapshot.LoadedAt.IsZero())

	records := []catalog.Record{{Name: "Vanguarda"}}
	store.Replace(records)
	records[0].Name = "mutated"

	snapshot = store.Snapshot()
	assert.Equal(t, catalog.StatusReady, snapshot.Status)
	assert.Equal(t, "Vanguarda", snapshot.Records[0].Name)
	assert.False(t, snapshot.LoadedAt.IsZero())

	cause := errors.New("unreachable")
	store.Fail(cause)

	snapshot = store.Snapshot()
	assert.Equal(t, catalog.StatusFailed, snapshot.Status)
	assert.Empty(t, snapshot.Records)
	assert.ErrorIs(t, snapshot.Err, cause)

	store.Replace(nil)
	snapshot = store.Snapshot()
	assert.Equal(t, catalog.StatusReady, snapshot.Status)
	assert.NoError(t, snapshot.Err)
}

func TestStore_ConcurrentReaders(t *testing.T) {
	store := catalog.NewStore()
	store.Replace([]catalog.Record{{Name: "a"}, {Name: "b"}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snapshot := store.Snapshot()
				if snapshot.Status == catalog.StatusReady {
					_ = catalog.Run(snapshot.Records, catalog.NewFilterState("a", "all"))
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		store.Replace([]catalog.Record{{Name: "a"}})
	}
	wg.Wait()

	assert.Len(t, store.Snapshot().Records, 1)
}
