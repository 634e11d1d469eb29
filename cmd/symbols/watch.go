package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/symbols"
	"github.com/flanksource/symbols/shutdown"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// settle is how long writes must pause before the symbol is reloaded
const settle = 200 * time.Millisecond

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <symbol.svg>",
		Short: "Inspect a symbol again every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := shutdown.Context(cmd.Context())
			defer stop()
			return watch(ctx, args[0], func() error {
				ed, err := open(args[0])
				if err != nil {
					return err
				}
				defer ed.Destroy()
				fmt.Println(symbols.MustFormat(ed.Report(), symbols.Flags.FormatOptions))
				return nil
			})
		},
	}
}

// watch calls reload once, then after each change to path until ctx is done.
// The parent directory is watched so editors that replace the file are seen.
func watch(ctx context.Context, path string, reload func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	shutdown.AddHookWithPriority("close watcher", shutdown.PriorityWatchers, func() {
		_ = watcher.Close()
	})

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	run := func() {
		if err := reload(); err != nil {
			logger.Errorf("failed to load %s: %v", path, err)
		}
	}
	run()

	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Remove) {
				if _, err := os.Stat(abs); err != nil {
					logger.Warnf("%s was removed", path)
					continue
				}
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debugf("%s changed (%s)", path, event.Op)
				timer.Reset(settle)
			}
		case <-timer.C:
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watch error: %v", err)
		}
	}
}
