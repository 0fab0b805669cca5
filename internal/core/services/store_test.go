package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyj/real-estate-mcp/internal/core/domain"
)

func TestStoreStartsEmpty(t *testing.T) {
	store := NewStore(&fakeSource{snap: testSnapshot()})

	snap := store.Snapshot()
	assert.Empty(t, snap.Listings)

	_, err := store.Get(context.Background(), domain.EntityListing, "PROP-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreRefreshActivatesSnapshot(t *testing.T) {
	store := NewStore(&fakeSource{snap: testSnapshot()})
	require.NoError(t, store.Refresh(context.Background()))

	got, err := store.Get(context.Background(), domain.EntityListing, "PROP-001")
	require.NoError(t, err)
	listing, ok := got.(domain.Listing)
	require.True(t, ok)
	assert.Equal(t, "42 Maple Street", listing.Address)

	all, err := store.All(context.Background(), domain.EntityListing)
	require.NoError(t, err)
	listings, ok := all.([]domain.Listing)
	require.True(t, ok)
	assert.Equal(t, []string{"PROP-001", "PROP-002", "PROP-003", "PROP-004"}, listingIDs(listings))
}

func TestStoreGetEveryEntityType(t *testing.T) {
	store := loadedStore()
	ctx := context.Background()

	tests := []struct {
		entityType domain.EntityType
		id         string
	}{
		{domain.EntityListing, "PROP-002"},
		{domain.EntityAgent, "AGT-001"},
		{domain.EntityClient, "CLI-002"},
		{domain.EntityTransaction, "TX-001"},
		{domain.EntityArea, "Woodcrest"},
		{domain.EntityAmenity, "AM-002"},
	}

	for _, tt := range tests {
		t.Run(string(tt.entityType), func(t *testing.T) {
			_, err := store.Get(ctx, tt.entityType, tt.id)
			assert.NoError(t, err)

			_, err = store.Get(ctx, tt.entityType, "no-such-id")
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}

	_, err := store.Get(ctx, domain.EntityType("warehouse"), "X")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestStoreAreaLookupIsCaseInsensitive(t *testing.T) {
	store := loadedStore()

	got, err := store.Get(context.Background(), domain.EntityArea, "woodcrest")
	require.NoError(t, err)
	area, ok := got.(domain.Area)
	require.True(t, ok)
	assert.Equal(t, "Woodcrest", area.Name)
}

func TestStoreRefreshFailureRetainsSnapshot(t *testing.T) {
	source := &fakeSource{snap: testSnapshot()}
	store := NewStore(source)
	require.NoError(t, store.Refresh(context.Background()))
	before := store.Snapshot()

	source.err = errors.New("data directory vanished")
	err := store.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoadFailure)

	// Reads continue against the pre-refresh snapshot, unchanged.
	after := store.Snapshot()
	assert.Equal(t, before.Generation, after.Generation)

	_, err = store.Get(context.Background(), domain.EntityListing, "PROP-001")
	assert.NoError(t, err)
}

func TestStoreRefreshSerialized(t *testing.T) {
	blockCh := make(chan struct{})
	source := &fakeSource{snap: testSnapshot(), blockCh: blockCh}
	store := NewStore(source)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		done <- store.Refresh(context.Background())
	}()

	<-started
	// Give the first refresh time to take the lock and block in Load.
	time.Sleep(20 * time.Millisecond)

	err := store.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrRefreshInProgress)

	close(blockCh)
	require.NoError(t, <-done)
}

func TestStoreRefreshIsAtomicUnderConcurrentReads(t *testing.T) {
	source := &fakeSource{snap: testSnapshot()}
	store := NewStore(source)
	require.NoError(t, store.Refresh(context.Background()))

	stop := make(chan struct{})
	var wg sync.WaitGroup

	// Readers must always observe an index whose generation matches
	// the snapshot it was derived from: never a torn pair.
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				ix := store.Index()
				snap := ix.Snapshot()
				assert.Equal(t, snap.Generation, ix.Generation())
				assert.Len(t, snap.Listings, 4)
			}
		}()
	}

	for range 25 {
		source.snap = testSnapshot() // fresh generation each load
		require.NoError(t, store.Refresh(context.Background()))
	}

	close(stop)
	wg.Wait()
}
