package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"farmerassist.app/internal/ports"
	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTTLs() NamespaceTTLs {
	return NamespaceTTLs{
		ports.NamespaceTranslation: 24 * time.Hour,
		ports.NamespaceWeather:     30 * time.Minute,
		ports.NamespaceMandi:       time.Hour,
	}
}

func fixedClock(t *testing.T, now time.Time) context.Context {
	t.Helper()
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, now)
	return ctx
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	ctx := fixedClock(t, base)
	store := NewMemoryStore(testTTLs())

	store.Put(ctx, ports.NamespaceWeather, "k", []byte(`{"temp":30}`))

	value, ok := store.Get(ctx, ports.NamespaceWeather, "k")
	require.True(t, ok)
	assert.JSONEq(t, `{"temp":30}`, string(value))

	_, ok = store.Get(ctx, ports.NamespaceMandi, "k")
	assert.False(t, ok, "namespaces must not share entries")

	_, ok = store.Get(ctx, ports.NamespaceWeather, "missing")
	assert.False(t, ok)
}

func TestMemoryStore_PutCopiesValue(t *testing.T) {
	ctx := fixedClock(t, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))
	store := NewMemoryStore(testTTLs())

	value := []byte("original")
	store.Put(ctx, ports.NamespaceMandi, "k", value)
	copy(value, "mutated!")

	got, ok := store.Get(ctx, ports.NamespaceMandi, "k")
	require.True(t, ok)
	assert.Equal(t, "original", string(got))
}

func TestMemoryStore_Expiry(t *testing.T) {
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		found   bool
	}{
		{"JustStored", 0, true},
		{"BeforeTTL", 30*time.Minute - time.Nanosecond, true},
		{"ExactlyAtTTL", 30 * time.Minute, false},
		{"AfterTTL", 31 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := fixedClock(t, base)
			store := NewMemoryStore(testTTLs())
			store.Put(ctx, ports.NamespaceWeather, "k", []byte("v"))

			ctxtimetest.SetFixedNow(t, ctx, base.Add(tt.elapsed))

			_, ok := store.Get(ctx, ports.NamespaceWeather, "k")
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestMemoryStore_ExpiredEntryCountsUntilSwept(t *testing.T) {
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	ctx := fixedClock(t, base)
	store := NewMemoryStore(testTTLs())

	store.Put(ctx, ports.NamespaceWeather, "old", []byte("v"))
	ctxtimetest.SetFixedNow(t, ctx, base.Add(45*time.Minute))

	_, ok := store.Get(ctx, ports.NamespaceWeather, "old")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Size(ctx, ports.NamespaceWeather))
}

func TestMemoryStore_Sweep(t *testing.T) {
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	ctx := fixedClock(t, base)
	store := NewMemoryStore(testTTLs())

	store.Put(ctx, ports.NamespaceWeather, "w1", []byte("v"))
	store.Put(ctx, ports.NamespaceMandi, "m1", []byte("v"))
	store.Put(ctx, ports.NamespaceTranslation, "t1", []byte("v"))

	ctxtimetest.SetFixedNow(t, ctx, base.Add(40*time.Minute))
	store.Put(ctx, ports.NamespaceWeather, "w2", []byte("v"))

	evicted := store.Sweep(ctx, base.Add(40*time.Minute))

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, store.Size(ctx, ports.NamespaceWeather))
	assert.Equal(t, 1, store.Size(ctx, ports.NamespaceMandi))
	assert.Equal(t, 1, store.Size(ctx, ports.NamespaceTranslation))

	_, ok := store.Get(ctx, ports.NamespaceWeather, "w2")
	assert.True(t, ok)

	evicted = store.Sweep(ctx, base.Add(25*time.Hour))
	assert.Equal(t, 3, evicted)
	for _, ns := range store.Namespaces() {
		assert.Zero(t, store.Size(ctx, ns), ns.String())
	}
}

func TestMemoryStore_PutResetsAge(t *testing.T) {
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	ctx := fixedClock(t, base)
	store := NewMemoryStore(testTTLs())

	store.Put(ctx, ports.NamespaceWeather, "k", []byte("first"))
	ctxtimetest.SetFixedNow(t, ctx, base.Add(20*time.Minute))
	store.Put(ctx, ports.NamespaceWeather, "k", []byte("second"))
	ctxtimetest.SetFixedNow(t, ctx, base.Add(45*time.Minute))

	value, ok := store.Get(ctx, ports.NamespaceWeather, "k")
	require.True(t, ok)
	assert.Equal(t, "second", string(value))
	assert.Equal(t, 1, store.Size(ctx, ports.NamespaceWeather))
}

func TestMemoryStore_UnknownNamespace(t *testing.T) {
	ctx := fixedClock(t, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))
	store := NewMemoryStore(NamespaceTTLs{ports.NamespaceWeather: time.Minute})

	store.Put(ctx, ports.NamespaceMandi, "k", []byte("v"))

	_, ok := store.Get(ctx, ports.NamespaceMandi, "k")
	assert.False(t, ok)
	assert.Zero(t, store.Size(ctx, ports.NamespaceMandi))
	assert.Zero(t, store.TTL(ports.NamespaceMandi))
	assert.Equal(t, time.Minute, store.TTL(ports.NamespaceWeather))
	assert.Equal(t, []ports.CacheNamespace{ports.NamespaceWeather}, store.Namespaces())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := fixedClock(t, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))
	store := NewMemoryStore(testTTLs())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			store.Put(ctx, ports.NamespaceMandi, key, []byte("v"))
			store.Get(ctx, ports.NamespaceMandi, key)
			store.Size(ctx, ports.NamespaceMandi)
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		store.Sweep(ctx, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))
	}()
	wg.Wait()

	assert.Equal(t, 26, store.Size(ctx, ports.NamespaceMandi))
}
