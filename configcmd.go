package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"postgrid/internal/config"
	"postgrid/internal/eventbus"
	"postgrid/internal/logging"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the postgrid config file",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigPathCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bus := eventbus.New(logging.NewWriter(cmd.ErrOrStderr(), zerolog.WarnLevel).Logger)
			defer bus.Close()

			saved := make(chan string, 1)
			unsubscribe := bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
				if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
					saved <- ev.Path
				}
			})
			defer unsubscribe()

			svc := config.NewConfigServiceWithBus(path, bus)
			if !force {
				if _, err := os.Stat(svc.Path()); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("failed to check config file: %w", err)
				}
			}

			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			written := svc.Path()
			select {
			case written = <-saved:
			case <-time.After(time.Second):
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "config file to write (default is "+config.DefaultPath()+")")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.DefaultPath())
		},
	}
}
