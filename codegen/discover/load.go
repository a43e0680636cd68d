package discover

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Config configures package loading.
type Config struct {
	// Dir is the directory patterns are resolved in, the current directory
	// when empty.
	Dir string
	// Tags lists the build tags used when loading.
	Tags []string
	// Env overrides the environment of the underlying go command.
	Env []string
}

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Load loads and type-checks the packages matching patterns. Listing errors
// of packages that could not be parsed and type-checked abort the load.
// Compile errors of the other packages do not, whether reported by the type
// checker or by go list: files generated by a previous run may refer to
// fields that no longer exist and must not prevent their own regeneration.
// Callers inspect TypeErrors to report them.
func Load(ctx context.Context, cfg Config, patterns ...string) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pcfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     cfg.Dir,
		Env:     cfg.Env,
	}
	if len(cfg.Tags) > 0 {
		pcfg.BuildFlags = []string{"-tags=" + strings.Join(cfg.Tags, ",")}
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", strings.Join(patterns, " "), err)
	}
	var (
		errs   []error
		usable = make([]*packages.Package, 0, len(pkgs))
	)
	for _, pkg := range pkgs {
		if pkg.Types != nil && pkg.TypesInfo != nil && len(pkg.Syntax) > 0 {
			usable = append(usable, pkg)
			continue
		}
		for _, e := range pkg.Errors {
			if e.Kind == packages.ListError {
				errs = append(errs, fmt.Errorf("%s: %s", pkg.PkgPath, e.Msg))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	pkgs = usable
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("load %s: no Go packages matched", strings.Join(patterns, " "))
	}
	slices.SortFunc(pkgs, func(a, b *packages.Package) int {
		return strings.Compare(a.PkgPath, b.PkgPath)
	})
	return pkgs, nil
}

// TypeErrors returns the errors reported for pkgs. Load only returns
// packages that were parsed and type-checked, so these are compile errors:
// type errors and the compiler output of go list, typically caused by
// generated files referring to fields that no longer exist.
func TypeErrors(pkgs []*packages.Package) []packages.Error {
	var errs []packages.Error
	for _, pkg := range pkgs {
		errs = append(errs, pkg.Errors...)
	}
	return errs
}
