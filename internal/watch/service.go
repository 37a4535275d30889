// Package watch re-runs the documentation maintenance operations whenever the
// catalog or configuration changes, with optional periodic full runs and a
// Prometheus metrics endpoint.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
)

// Service watches a set of files and invokes Run after a debounce period when
// any of them changes. An optional interval schedules unconditional runs on
// top of filesystem triggers.
type Service struct {
	// Paths are the files whose changes trigger a run (catalog, config).
	Paths []string
	// Debounce is the quiet period after the last filesystem event.
	Debounce time.Duration
	// Interval, when > 0, schedules periodic runs.
	Interval time.Duration
	// MetricsAddr, when set, serves MetricsHandler on /metrics.
	MetricsAddr    string
	MetricsHandler http.Handler
	// Run executes one full maintenance pass.
	Run func(ctx context.Context)
}

// Start runs the watch loop until the context is canceled. An initial run is
// executed before watching begins.
func (s *Service) Start(ctx context.Context) error {
	if s.Run == nil {
		return errors.New("watch: Run is required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directories containing the files; watching directories is
	// more reliable than watching files that editors replace atomically.
	watched := make(map[string]bool, len(s.Paths))
	dirs := make(map[string]bool)
	for _, p := range s.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve watch path %s: %w", p, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch directory %s: %w", dir, err)
		}
	}

	var metricsSrv *http.Server
	if s.MetricsAddr != "" && s.MetricsHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.MetricsHandler)
		metricsSrv = &http.Server{Addr: s.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			slog.Info("Serving metrics", "addr", s.MetricsAddr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	periodic := make(chan struct{}, 1)
	if s.Interval > 0 {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		_, err = scheduler.NewJob(
			gocron.DurationJob(s.Interval),
			gocron.NewTask(func() {
				select {
				case periodic <- struct{}{}:
				default:
				}
			}),
			gocron.WithName("periodic-run"),
		)
		if err != nil {
			return fmt.Errorf("schedule periodic run: %w", err)
		}
		scheduler.Start()
		defer func() { _ = scheduler.Shutdown() }()
		slog.Info("Scheduled periodic runs", "interval", s.Interval.String())
	}

	slog.Info("Watching for changes", "paths", s.Paths, "debounce", s.Debounce.String())
	s.Run(ctx)

	debounce := time.NewTimer(s.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			debounce.Reset(s.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)

		case <-debounce.C:
			s.Run(ctx)

		case <-periodic:
			s.Run(ctx)

		case <-ctx.Done():
			if metricsSrv != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				_ = metricsSrv.Shutdown(shutdownCtx)
				cancel()
			}
			return nil
		}
	}
}
