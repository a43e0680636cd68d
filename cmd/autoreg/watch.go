package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/romdo/go-debounce"
	"github.com/spf13/cobra"
	"goa.design/clue/log"

	"goa.design/autoreg/codegen"
	"goa.design/autoreg/codegen/naming"
)

const (
	// watchWait is the quiet period after the last change before
	// regenerating.
	watchWait = 200 * time.Millisecond
	// watchMaxWait bounds the delay of a regeneration under a continuous
	// stream of changes.
	watchMaxWait = 2 * time.Second
)

func newWatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [packages]",
		Short: "Regenerate accessors whenever the sources of the given packages change",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			s.keepGoing = true
			g, err := s.generator("")
			if err != nil {
				return err
			}
			return watch(cmd.Context(), g, s, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

// watch regenerates on every batch of source changes until ctx is canceled.
// The generator is reused across passes so only fields whose model changed
// are rendered again.
func watch(ctx context.Context, g *codegen.Generator, s *settings, stdout, stderr io.Writer, patterns []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	trigger := make(chan struct{}, 1)
	debounced, cancel := debounce.NewWithMaxWait(watchWait, watchMaxWait, func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer cancel()

	pass := func() {
		res, err := runGenerate(ctx, g, s, stdout, stderr, patterns)
		if err != nil {
			log.Error(ctx, err, log.KV{K: "msg", V: "generation failed"})
		}
		if res == nil {
			return
		}
		for _, dir := range res.Dirs {
			if err := watcher.Add(dir); err != nil {
				log.Error(ctx, err, log.KV{K: "msg", V: "watch directory"}, log.KV{K: "dir", V: dir})
			}
		}
	}
	pass()
	log.Info(ctx, log.KV{K: "msg", V: "watching"}, log.KV{K: "dirs", V: watcher.WatchList()})

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			pass()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if relevant(event) {
				log.Debug(ctx, log.KV{K: "msg", V: "change"}, log.KV{K: "file", V: event.Name}, log.KV{K: "op", V: event.Op.String()})
				debounced()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				debounced()
			}
			log.Error(ctx, err, log.KV{K: "msg", V: "watcher error"})
		}
	}
}

// relevant reports whether event may change the generated accessors. Writes
// to generated files are ignored so a pass does not trigger the next one.
func relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".go" || naming.IsGenerated(event.Name) {
		return false
	}
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
