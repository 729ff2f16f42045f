package cache

import (
	"context"
	"testing"
	"time"

	"farmerassist.app/internal/mocks"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweeper_SweepOnce(t *testing.T) {
	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	ctx := fixedClock(t, base)
	store := newMemoryStore()
	store.Put(ctx, ports.NamespaceWeather, "stale", []byte(`{}`))

	ctxtimetest.SetFixedNow(t, ctx, base.Add(20*time.Minute))
	store.Put(ctx, ports.NamespaceWeather, "fresh", []byte(`{}`))

	metrics := mocks.NewCacheMetrics(t)
	metrics.EXPECT().RecordSweep(1).Once()
	metrics.EXPECT().SetEntries(ports.NamespaceWeather, 1).Once()

	sweeper, err := NewSweeper(SweeperConfig{
		Store:    store,
		Logger:   mocks.AllowAnyLogs(mocks.NewLogger(t)),
		Metrics:  metrics,
		Interval: time.Hour,
	})
	require.NoError(t, err)

	ctxtimetest.SetFixedNow(t, ctx, base.Add(35*time.Minute))
	evicted := sweeper.SweepOnce(ctx)

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, store.Size(ctx, ports.NamespaceWeather))
	_, ok := store.Get(ctx, ports.NamespaceWeather, "fresh")
	assert.True(t, ok)
}

func TestSweeper_SweepOnceRecoversFromPanic(t *testing.T) {
	store := mocks.NewCacheStore(t)
	store.EXPECT().Sweep(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, time.Time) int {
		panic("corrupted shard")
	})

	logger := mocks.NewLogger(t)
	logger.EXPECT().Error("Cache sweep panicked", mock.Anything).Once()

	sweeper, err := NewSweeper(SweeperConfig{Store: store, Logger: logger, Interval: time.Hour})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.Zero(t, sweeper.SweepOnce(context.Background()))
	})
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	store := newMemoryStore()
	sweeper, err := NewSweeper(SweeperConfig{
		Store:    store,
		Logger:   mocks.AllowAnyLogs(mocks.NewLogger(t)),
		Interval: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}

func TestNewSweeper_Validation(t *testing.T) {
	logger := mocks.NewLogger(t)

	tests := []struct {
		name   string
		config SweeperConfig
	}{
		{"MissingStore", SweeperConfig{Logger: logger, Interval: time.Hour}},
		{"MissingLogger", SweeperConfig{Store: newMemoryStore(), Interval: time.Hour}},
		{"ZeroInterval", SweeperConfig{Store: newMemoryStore(), Logger: logger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sweeper, err := NewSweeper(tt.config)
			assert.Nil(t, sweeper)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
