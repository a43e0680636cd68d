// Package codegen runs the autoreg pipeline: it discovers marked struct
// fields, extracts their models, synthesizes one accessor file per field and
// writes the files that changed.
//
// Every field goes through the pipeline on its own. A field that cannot host
// an accessor yields a diagnostic and no output; other fields are not
// affected. Rendered output is memoized by model fingerprint so a Generator
// reused across runs (see the watch command) only re-renders fields whose
// model changed.
package codegen

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"goa.design/clue/log"

	"goa.design/autoreg/codegen/accessor"
	"goa.design/autoreg/codegen/discover"
	"goa.design/autoreg/codegen/model"
	"goa.design/autoreg/codegen/naming"
)

type (
	// Generator runs the generation pipeline. A Generator is safe for
	// concurrent use.
	Generator struct {
		contract  model.Contract
		load      discover.Config
		cacheSize int
		cache     *renderCache
	}

	// Option configures a Generator.
	Option func(*Generator)

	// Result is the outcome of one generation run.
	Result struct {
		// Outputs lists the generated files sorted by path.
		Outputs []*Output
		// Diagnostics lists the marked fields that produced no output.
		Diagnostics []*model.Diagnostic
		// Dirs lists the directories of the processed packages.
		Dirs []string
		// Generated lists the generated files that are part of the
		// processed packages under the load configuration, sorted.
		// Files excluded by their build constraint are not listed.
		Generated []string
		// TypeErrors lists the type-checking errors of the loaded
		// packages. They do not prevent generation.
		TypeErrors []error
	}

	// Output is one generated file.
	Output struct {
		// Key identifies the output, see naming.Key.
		Key string
		// Path is the path of the generated file.
		Path string
		// Content is the gofmt-ed file content. It may be shared with the
		// render cache and must not be modified.
		Content []byte
		// Fingerprint is the fingerprint of the model the file was
		// rendered from.
		Fingerprint string
		// Cached is true when Content was served from the render cache.
		Cached bool
	}
)

// DefaultCacheSize is the default number of rendered files kept in memory.
const DefaultCacheSize = 4096

// WithContract sets the registry contract. Empty members default to
// model.DefaultContract's.
func WithContract(c model.Contract) Option {
	return func(g *Generator) {
		g.contract = c.WithDefaults()
	}
}

// WithLoadConfig sets the package loading configuration.
func WithLoadConfig(cfg discover.Config) Option {
	return func(g *Generator) {
		g.load = cfg
	}
}

// WithCacheSize sets the number of rendered files kept in memory. A size of
// zero or less disables the cache.
func WithCacheSize(size int) Option {
	return func(g *Generator) {
		g.cacheSize = size
	}
}

// New returns a generator configured with opts.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{contract: model.DefaultContract, cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.contract.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry contract: %w", err)
	}
	if g.cacheSize > 0 {
		cache, err := newRenderCache(g.cacheSize)
		if err != nil {
			return nil, err
		}
		g.cache = cache
	}
	return g, nil
}

// Generate loads the packages matching patterns and generates the accessors
// of their marked fields. It returns an error only when the packages cannot
// be loaded.
func (g *Generator) Generate(ctx context.Context, patterns ...string) (*Result, error) {
	pkgs, err := discover.Load(ctx, g.load, patterns...)
	if err != nil {
		return nil, err
	}
	res := g.GenerateFields(ctx, discover.Fields(pkgs))
	for _, pkg := range pkgs {
		if len(pkg.GoFiles) > 0 {
			res.Dirs = append(res.Dirs, filepath.Dir(pkg.GoFiles[0]))
		}
		for _, file := range pkg.GoFiles {
			if naming.IsGenerated(file) {
				res.Generated = append(res.Generated, file)
			}
		}
	}
	slices.Sort(res.Generated)
	slices.Sort(res.Dirs)
	res.Dirs = slices.Compact(res.Dirs)
	for _, e := range discover.TypeErrors(pkgs) {
		res.TypeErrors = append(res.TypeErrors, e)
	}
	return res, nil
}

// GenerateFields generates the accessors of the given declarations. A field
// whose generated methods would clash with the methods generated for an
// earlier field of the same type is diagnosed instead of generated.
func (g *Generator) GenerateFields(ctx context.Context, decls iter.Seq2[model.Declaration, error]) *Result {
	var (
		res    = &Result{}
		byPath = make(map[string]*Output)
		owners = make(map[string]string)
	)
	for decl, err := range decls {
		if err == nil {
			var out *Output
			out, err = g.generate(decl, byPath, owners)
			if err == nil {
				res.Outputs = append(res.Outputs, out)
				log.Debug(ctx, log.KV{K: "msg", V: "generated"}, log.KV{K: "key", V: out.Key}, log.KV{K: "cached", V: out.Cached})
				continue
			}
		}
		var diag *model.Diagnostic
		if !errors.As(err, &diag) {
			diag = &model.Diagnostic{Kind: model.Unsupported, Message: err.Error(), Err: err}
		}
		log.Debug(ctx, log.KV{K: "msg", V: "skipped"}, log.KV{K: "key", V: diag.Key}, log.KV{K: "kind", V: string(diag.Kind)})
		res.Diagnostics = append(res.Diagnostics, diag)
	}
	slices.SortFunc(res.Outputs, func(a, b *Output) int {
		return strings.Compare(a.Path, b.Path)
	})
	return res
}

// generate runs extraction and synthesis for one declaration. byPath holds
// the outputs generated so far and owners maps the methods generated so far,
// qualified by package and type, to the key of their field.
func (g *Generator) generate(decl model.Declaration, byPath map[string]*Output, owners map[string]string) (*Output, error) {
	f, err := model.Extract(decl, g.contract)
	if err != nil {
		return nil, err
	}
	out, err := g.Synthesize(f)
	if err != nil {
		return nil, err
	}
	diag := func(kind model.DiagnosticKind, format string, args ...any) error {
		return &model.Diagnostic{Pos: decl.Pos(), Key: out.Key, Kind: kind, Message: fmt.Sprintf(format, args...)}
	}
	if prev, dup := byPath[out.Path]; dup {
		return nil, diag(model.Unsupported, "output %s is also generated for %s", out.Path, prev.Key)
	}
	prefix := f.PkgPath + "." + f.TypeName + "."
	if owner, ok := owners[prefix+f.AccessorName]; ok {
		return nil, diag(model.GetterCollision, "%s.%s is also generated for %s", f.TypeName, f.AccessorName, owner)
	}
	if owner, ok := owners[prefix+f.SetterName]; ok {
		return nil, diag(model.SetterCollision, "%s.%s is also generated for %s", f.TypeName, f.SetterName, owner)
	}
	byPath[out.Path] = out
	owners[prefix+f.AccessorName] = out.Key
	owners[prefix+f.SetterName] = out.Key
	return out, nil
}

// Synthesize renders the file generated for f. Rendering is skipped when a
// model with the same fingerprint was rendered before.
func (g *Generator) Synthesize(f model.Field) (*Output, error) {
	file := accessor.File(f)
	out := &Output{Key: f.Key(), Path: file.Path, Fingerprint: f.Fingerprint()}
	if content, ok := g.cache.get(out.Fingerprint); ok {
		out.Content, out.Cached = content, true
		return out, nil
	}
	content, err := accessor.Render(file)
	if err != nil {
		return nil, &model.Diagnostic{Key: out.Key, Kind: model.Unsupported, Message: err.Error(), Err: err}
	}
	g.cache.add(out.Fingerprint, content)
	out.Content = content
	return out, nil
}

// Diagnosed reports whether any marked field produced no output.
func (r *Result) Diagnosed() bool {
	return len(r.Diagnostics) > 0
}
