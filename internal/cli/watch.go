package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/gogpu/bookmark"
	"github.com/gogpu/bookmark/internal/config"
)

var watchOpts struct {
	output   string
	interval time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render whenever the parameter file changes",
	Long: `Watches the parameter file and writes a new SVG after every change.
A change that arrives while a render is running cancels it; only the
newest parameters reach the output file.

A file without a seed gets one seed for the whole session so edits to
other keys stay comparable.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOpts.output, "output", "o", "bookmark.svg", "output file")
	watchCmd.Flags().DurationVar(&watchOpts.interval, "interval", 250*time.Millisecond,
		"minimum time between renders")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	path := resolveConfig()
	if path == "" {
		return errNoConfig
	}

	src, err := loadFont()
	if err != nil {
		return err
	}
	defer src.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := &watcher{
		config:   path,
		output:   watchOpts.output,
		interval: watchOpts.interval,
		regen:    bookmark.NewRegenerator(bookmark.NewRenderer(src)),
		report:   cmd.ErrOrStderr(),
	}
	return w.run(ctx)
}

// watcher re-renders a parameter file into an SVG file.
type watcher struct {
	config   string
	output   string
	interval time.Duration
	regen    *bookmark.Regenerator
	report   io.Writer

	seed    string
	writeMu sync.Mutex
	wg      sync.WaitGroup

	// rendered is called after every written document; tests hook it.
	rendered func(*bookmark.Document)
}

func (w *watcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	target := filepath.Clean(w.config)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", target, err)
	}

	log := bookmark.Logger().With("config", target)
	limiter := rate.NewLimiter(rate.Every(w.interval), 1)
	defer w.wg.Wait()

	log.Info("watching", "output", w.output)
	w.trigger(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			log.Debug("change", "op", ev.Op.String())
			w.trigger(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		}
	}
}

// trigger loads the parameters and starts a pass. Passes that are
// overtaken by a newer one end quietly.
func (w *watcher) trigger(ctx context.Context) {
	log := bookmark.Logger()
	p, err := config.Load(w.config)
	if err != nil {
		log.Error("load parameters", "err", err)
		return
	}
	if p.Seed == "" {
		if w.seed == "" {
			if err := ensureSeed(&p); err != nil {
				log.Error("seed", "err", err)
				return
			}
			w.seed = p.Seed
		}
		p.Seed = w.seed
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		doc, err := w.regen.Regenerate(ctx, p)
		switch {
		case errors.Is(err, bookmark.ErrSuperseded), errors.Is(err, context.Canceled):
			log.Debug("render dropped", "seed", p.Seed, "reason", err)
			return
		case err != nil:
			log.Error("render", "err", err)
			return
		}
		if err := w.write(doc); err != nil {
			log.Error("write output", slog.String("path", w.output), "err", err)
		}
	}()
}

// write stores doc unless a newer document already completed.
func (w *watcher) write(doc *bookmark.Document) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if w.regen.Current() != doc {
		return nil
	}
	data, err := doc.SVG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.output, data, 0o644); err != nil {
		return err
	}
	writeSummary(w.report, doc, w.output, false)
	if w.rendered != nil {
		w.rendered(doc)
	}
	return nil
}
