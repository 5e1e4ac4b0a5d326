package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"postgrid/internal/config"
	"postgrid/internal/eventbus"
	"postgrid/internal/logging"
	"postgrid/internal/posts"
	"postgrid/internal/ui"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "postgrid",
		Short:         "Browse posts in a paginated terminal grid",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, configPath)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default is "+config.DefaultPath()+")")
	flags.StringP("posts", "p", "", "YAML or JSON file with the posts to show")
	flags.Int("demo", 0, "number of generated posts when no posts file is set")
	flags.Int("page-size", 0, "posts per page")
	flags.Int("columns", 0, "cards per row")
	flags.Bool("watch", true, "reload the posts file when it changes")
	flags.Bool("notify-on-mount", true, "report the first page when the pager mounts")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "log file path")

	cmd.AddCommand(newWindowCmd(), newConfigCmd())
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, configPath string) error {
	// Config is read before the bus exists, so its logger comes later
	configSvc := config.WithFlags(config.NewConfigService(configPath), cmd.Flags())
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(logging.Settings{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.Logger
	log.Info().Str("config", configSvc.Path()).Int("page_size", cfg.PageSize).Msg("starting postgrid")

	source := posts.Source{Path: cfg.PostsFile, Demo: cfg.DemoPosts}
	initial, err := source.Load()
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	bus := eventbus.New(logging.Component(log, "eventbus"))
	defer bus.Close()

	model := ui.NewModel(bus, cfg, log)
	model.SetSource(source.Name())
	model.SetPosts(initial)

	// The UI and the watcher share a context: either one ending stops the other
	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	viewer := ui.NewOvViewer()
	model.SetViewer(viewer)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(gctx))
	viewer.SetProgram(p)

	// Forward events to the UI
	for _, t := range []eventbus.EventType{
		eventbus.EventPostsLoaded,
		eventbus.EventError,
		eventbus.EventWatchStarted,
	} {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	g.Go(func() error {
		return posts.NewWatcher(source, bus, log, cfg.Watch).Run(gctx)
	})
	g.Go(func() error {
		defer stop()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("postgrid stopped")
		return err
	}

	log.Info().Msg("postgrid exited")
	return nil
}
