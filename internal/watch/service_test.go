package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestService_RequiresRun(t *testing.T) {
	err := (&Service{}).Start(context.Background())
	require.Error(t, err)
}

func TestService_InitialRunAndCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components: []\n"), 0o644))

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	svc := &Service{
		Paths:    []string{path},
		Debounce: 10 * time.Millisecond,
		Run:      func(context.Context) { runs.Add(1) },
	}

	done := make(chan error, 1)
	go func() { done <- svc.Start(ctx) }()

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop after cancel")
	}
}

func TestService_TriggersOnWatchedFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components: []\n"), 0o644))

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc := &Service{
		Paths:    []string{path},
		Debounce: 20 * time.Millisecond,
		Run:      func(context.Context) { runs.Add(1) },
	}

	go func() { _ = svc.Start(ctx) }()
	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("components: []\ninject: []\n"), 0o644))
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
}

func TestService_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components: []\n"), 0o644))

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc := &Service{
		Paths:    []string{path},
		Debounce: 20 * time.Millisecond,
		Run:      func(context.Context) { runs.Add(1) },
	}

	go func() { _ = svc.Start(ctx) }()
	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.Equal(t, int32(1), runs.Load())
}
