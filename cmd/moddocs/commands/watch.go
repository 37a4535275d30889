package commands

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mode-7/moddocs/internal/catalog"
	"github.com/mode-7/moddocs/internal/config"
	"github.com/mode-7/moddocs/internal/history"
	"github.com/mode-7/moddocs/internal/logfields"
	"github.com/mode-7/moddocs/internal/metrics"
	"github.com/mode-7/moddocs/internal/notify"
	"github.com/mode-7/moddocs/internal/patch"
	"github.com/mode-7/moddocs/internal/watch"
)

// WatchCmd implements the 'watch' command: keep the docs in sync with the
// catalog by re-running inject, generate and fix-refs whenever the catalog or
// config changes, plus optionally on a fixed interval.
type WatchCmd struct {
	Docs   string `help:"Docs root directory (overrides config)"`
	DryRun bool   `help:"Report what would change without writing files"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	docsRoot := cfg.DocsRoot
	if w.Docs != "" {
		docsRoot = w.Docs
	}

	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return err
	}
	interval, err := cfg.IntervalDuration()
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var metricsHandler http.Handler
	if cfg.Watch.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheusRecorder(reg)
		metricsHandler = metrics.HTTPHandler(reg)
	}

	var store *history.Store
	if !cfg.History.Disabled && !w.DryRun {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var publisher notify.Publisher = notify.Noop{}
	if cfg.Notify.URL != "" {
		publisher, err = notify.NewNATSPublisher(cfg.Notify.URL, cfg.Notify.Subject)
		if err != nil {
			return err
		}
		defer publisher.Close()
	}

	runner := watchRunner{
		cfg:       cfg,
		docsRoot:  docsRoot,
		dryRun:    w.DryRun,
		recorder:  recorder,
		store:     store,
		publisher: publisher,
	}

	paths := []string{cfg.Catalog}
	if _, err := os.Stat(root.Config); err == nil {
		paths = append(paths, root.Config)
	}

	svc := &watch.Service{
		Paths:          paths,
		Debounce:       debounce,
		Interval:       interval,
		MetricsAddr:    cfg.Watch.MetricsAddr,
		MetricsHandler: metricsHandler,
		Run:            runner.runAll,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("watching for catalog changes",
		logfields.Catalog(cfg.Catalog), logfields.DocsRoot(docsRoot))
	return svc.Start(ctx)
}

// watchRunner executes one full maintenance pass and fans the reports out to
// metrics, history and the notifier.
type watchRunner struct {
	cfg       *config.Config
	docsRoot  string
	dryRun    bool
	recorder  metrics.Recorder
	store     *history.Store
	publisher notify.Publisher
}

func (r watchRunner) runAll(ctx context.Context) {
	cat, err := catalog.Load(r.cfg.Catalog)
	if err != nil {
		slog.Error("failed to load catalog", logfields.Error(err))
		return
	}

	gen := patch.Generator{DocsRoot: r.docsRoot, DryRun: r.dryRun}
	r.observe(ctx, gen.Run(cat.Components))

	inj := patch.Injector{DocsRoot: r.docsRoot, DryRun: r.dryRun}
	r.observe(ctx, inj.Run(cat.Inject))

	fix := patch.RefsFixer{DocsRoot: r.docsRoot, DryRun: r.dryRun}
	r.observe(ctx, fix.Run(cat.Refs))
}

func (r watchRunner) observe(ctx context.Context, rep *patch.Report) {
	r.recorder.ObserveRunDuration(rep.Command, rep.Finished.Sub(rep.Started))
	for _, o := range rep.Outcomes {
		r.recorder.IncFileOutcome(rep.Command, string(o.Status))
	}
	r.recorder.IncRunOutcome(rep.Command, rep.HasFailures())

	if r.store != nil {
		if err := r.store.Record(ctx, rep); err != nil {
			slog.Warn("failed to record run history",
				logfields.Command(rep.Command), logfields.Error(err))
		}
	}
	if err := r.publisher.Publish(rep); err != nil {
		slog.Warn("failed to publish run report",
			logfields.Command(rep.Command), logfields.Error(err))
	}

	slog.Info("run complete", logfields.RunID(rep.RunID),
		logfields.Command(rep.Command), "summary", rep.Summary())
}
