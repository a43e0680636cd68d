package codegen

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"goa.design/clue/log"

	"goa.design/autoreg/codegen/accessor"
	"goa.design/autoreg/codegen/naming"
)

type (
	// WriteOptions configures Write.
	WriteOptions struct {
		// DryRun reports the changes without touching the file system.
		DryRun bool
		// Prune removes the generated files of the processed packages,
		// see Result.Generated, that no longer correspond to a marked
		// field.
		Prune bool
	}

	// Action describes what Write did with a file.
	Action string

	// Change is a file Write considered.
	Change struct {
		Path   string
		Key    string
		Action Action
	}
)

const (
	// Written means the file was created or its content replaced.
	Written Action = "written"
	// Unchanged means the file already had the generated content.
	Unchanged Action = "unchanged"
	// Removed means a stale generated file was deleted.
	Removed Action = "removed"
)

// Write writes the outputs of res whose content differs from the file on
// disk. Files whose content is unchanged are not touched so their
// modification time is preserved.
func Write(ctx context.Context, res *Result, opts WriteOptions) ([]Change, error) {
	var (
		changes []Change
		errs    []error
		keep    = make(map[string]bool, len(res.Outputs))
	)
	for _, out := range res.Outputs {
		keep[out.Path] = true
		existing, err := os.ReadFile(out.Path)
		if err == nil && bytes.Equal(existing, out.Content) {
			changes = append(changes, Change{Path: out.Path, Key: out.Key, Action: Unchanged})
			continue
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("read %s: %w", out.Path, err))
			continue
		}
		if !opts.DryRun {
			if err := os.WriteFile(out.Path, out.Content, 0o644); err != nil { //nolint:gosec // generated sources are world readable
				errs = append(errs, fmt.Errorf("write %s: %w", out.Path, err))
				continue
			}
		}
		log.Debug(ctx, log.KV{K: "msg", V: "write"}, log.KV{K: "path", V: out.Path})
		changes = append(changes, Change{Path: out.Path, Key: out.Key, Action: Written})
	}
	if opts.Prune {
		removed, err := prune(ctx, res.Generated, keep, opts.DryRun)
		changes = append(changes, removed...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	slices.SortFunc(changes, func(a, b Change) int {
		return strings.Compare(a.Path, b.Path)
	})
	return changes, errors.Join(errs...)
}

// prune removes the generated files that are not in keep. Only files
// starting with the autoreg header are removed.
func prune(ctx context.Context, generated []string, keep map[string]bool, dryRun bool) ([]Change, error) {
	var (
		changes []Change
		errs    []error
	)
	for _, path := range generated {
		if keep[path] {
			continue
		}
		ok, err := hasHeader(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			log.Debug(ctx, log.KV{K: "msg", V: "not generated by autoreg, kept"}, log.KV{K: "path", V: path})
			continue
		}
		if !dryRun {
			if err := os.Remove(path); err != nil {
				errs = append(errs, fmt.Errorf("remove %s: %w", path, err))
				continue
			}
		}
		key, _ := naming.KeyFromFile(path)
		changes = append(changes, Change{Path: path, Key: key, Action: Removed})
	}
	return changes, errors.Join(errs...)
}

// hasHeader reports whether the first line of the file at path is the
// autoreg header.
func hasHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	return strings.TrimRight(line, "\r\n") == accessor.Header, nil
}
