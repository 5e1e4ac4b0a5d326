package posts

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"postgrid/internal/eventbus"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to settle
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a Source when its file changes or a reload is requested
// and publishes the result on the bus.
type Watcher struct {
	source   Source
	bus      eventbus.EventBus
	log      zerolog.Logger
	debounce time.Duration
	watch    bool
}

// NewWatcher creates a watcher for source. When watch is false, or the source
// has no file, only explicit reload requests are served.
func NewWatcher(source Source, bus eventbus.EventBus, logger zerolog.Logger, watch bool) *Watcher {
	return &Watcher{
		source:   source,
		bus:      bus,
		log:      logger.With().Str("component", "watcher").Logger(),
		debounce: DefaultDebounce,
		watch:    watch && source.Path != "",
	}
}

// SetDebounce changes the settle delay
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run serves file changes and reload requests until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	reloads := make(chan struct{}, 1)
	unsubscribe := w.bus.Subscribe(eventbus.EventReloadRequested, func(eventbus.DomainEvent) {
		select {
		case reloads <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	var (
		fsEvents <-chan fsnotify.Event
		fsErrors <-chan error
		target   string
	)
	if w.watch {
		fw, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer func() {
			if err := fw.Close(); err != nil {
				w.log.Warn().Err(err).Msg("failed to close watcher")
			}
		}()

		target = filepath.Clean(w.source.Path)
		// Watch the directory so editors that replace the file are still seen
		if err := fw.Add(filepath.Dir(target)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
		}
		fsEvents = fw.Events
		fsErrors = fw.Errors
		w.log.Info().Str("path", target).Msg("watching posts file")
		w.bus.Publish(eventbus.WatchStartedEvent{Path: target})
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-reloads:
			w.reload()

		case event, ok := <-fsEvents:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug().Str("op", event.Op.String()).Msg("posts file changed")
			timer.Reset(w.debounce)

		case <-timer.C:
			w.reload()

		case err, ok := <-fsErrors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watch error")
			w.bus.Publish(eventbus.ErrorEvent{Message: "watch error", Err: err})
		}
	}
}

func (w *Watcher) reload() {
	posts, err := w.source.Load()
	if err != nil {
		w.log.Error().Err(err).Str("source", w.source.Name()).Msg("reload failed")
		w.bus.Publish(eventbus.ErrorEvent{Message: "reload failed", Err: err})
		return
	}
	w.log.Info().Int("posts", len(posts)).Str("source", w.source.Name()).Msg("posts reloaded")
	w.bus.Publish(eventbus.PostsLoadedEvent{Source: w.source.Name(), Posts: posts})
}
