package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/inlay/internal/adapter"
	"github.com/mouse-blink/inlay/internal/controller"
	"github.com/mouse-blink/inlay/internal/domain/syntax"
	"github.com/mouse-blink/inlay/internal/logger"
	m "github.com/mouse-blink/inlay/internal/model"
)

const defaultRoot = "./..."

// ScanArgs selects the files an operation reads.
type ScanArgs struct {
	Paths    []m.Path
	Exclude  []string
	Parallel int
	Config   m.Path
}

// ListArgs contains the arguments for listing variations.
type ListArgs struct {
	ScanArgs
	Format controller.Format
}

// SetArgs contains the arguments for activating a variant.
type SetArgs struct {
	ScanArgs
	Variant  string
	Selector m.Selector
}

// UnsetArgs contains the arguments for restoring a variation to base.
type UnsetArgs struct {
	ScanArgs
	Selector m.Selector
}

// ResetArgs contains the arguments for restoring every variation to base.
type ResetArgs struct {
	ScanArgs
}

// InitArgs contains the arguments for creating a project file.
type InitArgs struct {
	Dir      m.Path
	Language string
}

// Workflow runs the CLI operations over files on disk.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Set(ctx context.Context, args SetArgs) error
	Unset(ctx context.Context, args UnsetArgs) error
	Reset(ctx context.Context, args ResetArgs) error
	Init(ctx context.Context, args InitArgs) error
}

type workflow struct {
	fsAdapter     adapter.SourceFSAdapter
	configAdapter adapter.ConfigAdapter
	goAdapter     adapter.GoFileAdapter
	ui            controller.UI
	grammar       syntax.Grammar
	rewriter      Rewriter
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	configAdapter adapter.ConfigAdapter,
	goAdapter adapter.GoFileAdapter,
	ui controller.UI,
	grammar syntax.Grammar,
	rewriter Rewriter,
) Workflow {
	return &workflow{
		fsAdapter:     fsAdapter,
		configAdapter: configAdapter,
		goAdapter:     goAdapter,
		ui:            ui,
		grammar:       grammar,
		rewriter:      rewriter,
	}
}

// parsedFile is one scanned file and its parse outcome.
type parsedFile struct {
	path     m.Path
	document *m.Document
	err      error
}

// List prints every variation found under the scanned paths.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	files, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	var summaries []m.VariationSummary

	for _, file := range files {
		if file.err != nil {
			logger.Warn("skipping %s: %v", w.fsAdapter.RelPath(file.path), file.err)
			continue
		}

		for _, summary := range List(file.document) {
			summary.Path = w.fsAdapter.RelPath(file.path)
			summaries = append(summaries, summary)
		}
	}

	logger.Debug("found %d variations in %d files", len(summaries), len(files))

	return w.ui.DisplayVariations(summaries, args.Format)
}

// Set activates args.Variant in the single variation args.Selector picks.
func (w *workflow) Set(ctx context.Context, args SetArgs) error {
	if args.Variant == "" {
		return errors.New("variant name is required")
	}

	sel := args.Selector
	if sel.Variation == "" && sel.Line == 0 {
		sel.Variant = args.Variant
	}

	return w.rewrite(ctx, args.ScanArgs, sel, args.Variant)
}

// Unset restores the base body of the single variation args.Selector picks.
func (w *workflow) Unset(ctx context.Context, args UnsetArgs) error {
	return w.rewrite(ctx, args.ScanArgs, args.Selector, m.BaseName)
}

// Reset restores every variation in every scanned file to base. Files are
// handled independently; failures are collected and returned together. Only
// files that changed are written and reported.
func (w *workflow) Reset(ctx context.Context, args ResetArgs) error {
	files, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	var (
		errs    []error
		changed int
	)

	for _, file := range files {
		display := w.fsAdapter.RelPath(file.path)

		if file.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", display, file.err))
			continue
		}

		if len(file.document.Variations()) == 0 {
			continue
		}

		doc, changes, err := w.rewriter.Reset(file.document)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", display, err))
			continue
		}

		if len(changes) == 0 {
			logger.Debug("%s: all variations already at base", display)
			continue
		}

		if err := w.write(file.path, doc); err != nil {
			errs = append(errs, err)
			continue
		}

		changed++

		for i := range changes {
			changes[i].Path = display
		}

		w.ui.DisplayReset(m.ResetResult{Path: display, Changes: changes})
	}

	if changed == 0 && len(errs) == 0 {
		logger.Info("all variations already at base")
	}

	return errors.Join(errs...)
}

// Init writes a project file for language into args.Dir.
func (w *workflow) Init(_ context.Context, args InitArgs) error {
	lang, ok := m.LookupLanguage(args.Language, nil)
	if !ok {
		return fmt.Errorf("unknown language %q", args.Language)
	}

	dir := args.Dir
	if dir == "" {
		dir = "."
	}

	path := m.Path(filepath.Join(string(dir), adapter.ConfigFileName))

	cfg := m.ProjectConfig{Languages: []string{lang.Name}}
	if err := w.configAdapter.Write(path, cfg); err != nil {
		return err
	}

	w.ui.DisplayInit(w.fsAdapter.RelPath(path))

	return nil
}

func (w *workflow) rewrite(ctx context.Context, scan ScanArgs, sel m.Selector, variant string) error {
	if sel.Path != "" {
		abs, err := w.fsAdapter.AbsPath(sel.Path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", sel.Path, err)
		}

		sel.Path = abs
		scan.Paths = []m.Path{abs}
	}

	files, err := w.scan(ctx, scan)
	if err != nil {
		return err
	}

	var candidates []candidate

	documents := make(map[m.Path]*m.Document, len(files))

	for _, file := range files {
		if file.err != nil {
			if sel.Path != "" && file.path == sel.Path {
				return fmt.Errorf("%s: %w", w.fsAdapter.RelPath(file.path), file.err)
			}

			logger.Warn("skipping %s: %v", w.fsAdapter.RelPath(file.path), file.err)

			continue
		}

		documents[file.path] = file.document
		candidates = append(candidates, documentCandidates(file.path, file.document)...)
	}

	target, err := resolve(candidates, sel)
	if err != nil {
		return err
	}

	doc, result, err := w.rewriter.Activate(
		documents[target.path],
		m.Selector{Path: target.path, Line: target.variation.Position.Line},
		variant,
	)
	if err != nil {
		return err
	}

	result.Path = w.fsAdapter.RelPath(target.path)

	if !result.Changed() {
		if variant == m.BaseName {
			logger.Warn("variation '%s' is already at base", result.Variation)
		} else {
			logger.Warn("variant '%s' is already active", variant)
		}

		w.ui.DisplayRewrite(result)

		return nil
	}

	if err := w.write(target.path, doc); err != nil {
		return err
	}

	w.ui.DisplayRewrite(result)

	return nil
}

// write stores doc at path and syntax-checks rewritten Go files.
func (w *workflow) write(path m.Path, doc *m.Document) error {
	content := []byte(w.grammar.Render(doc))

	if err := w.fsAdapter.WriteFile(path, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.fsAdapter.RelPath(path), err)
	}

	logger.Debug("wrote %s", w.fsAdapter.RelPath(path))

	if w.goAdapter.Supports(path) {
		if err := w.goAdapter.Check(path, content); err != nil {
			logger.Warn("%s no longer parses as Go: %v", w.fsAdapter.RelPath(path), err)
		}
	}

	return nil
}

// scan finds the files selected by args and parses them concurrently.
// Results keep the order the filesystem adapter returned.
func (w *workflow) scan(ctx context.Context, args ScanArgs) ([]parsedFile, error) {
	cfg, err := w.loadConfig(args.Config)
	if err != nil {
		return nil, err
	}

	accept, err := fileFilter(cfg, args.Exclude)
	if err != nil {
		return nil, err
	}

	roots := args.Paths
	if len(roots) == 0 {
		roots = []m.Path{defaultRoot}
	}

	paths, err := w.fsAdapter.Get(roots, func(path m.Path) bool {
		return accept(w.fsAdapter.RelPath(path))
	})
	if err != nil {
		return nil, err
	}

	files := make([]parsedFile, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(parallelism(args.Parallel, cfg.Parallel))

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			files[i] = w.parse(path)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

func (w *workflow) parse(path m.Path) parsedFile {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return parsedFile{path: path, err: fmt.Errorf("failed to read file: %w", err)}
	}

	doc, err := w.grammar.Parse(string(content))
	if err != nil {
		return parsedFile{path: path, err: err}
	}

	return parsedFile{path: path, document: doc}
}

func (w *workflow) loadConfig(explicit m.Path) (m.ProjectConfig, error) {
	path := explicit

	if path == "" {
		found, ok, err := w.configAdapter.Find(".")
		if err != nil {
			return m.ProjectConfig{}, err
		}

		if !ok {
			logger.Debug("no %s found, scanning all built-in languages", adapter.ConfigFileName)
			return m.ProjectConfig{}, nil
		}

		path = found
	}

	logger.Debug("using config %s", path)

	return w.configAdapter.Load(path)
}

// fileFilter accepts files whose extension belongs to a configured language
// and whose slash-separated path matches none of the exclude patterns.
func fileFilter(cfg m.ProjectConfig, exclude []string) (func(m.Path) bool, error) {
	patterns := append(append([]string{}, cfg.Ignore...), exclude...)
	regexes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		regexes = append(regexes, re)
	}

	extensions := cfg.Extensions()

	return func(path m.Path) bool {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(string(path)), "."))
		if _, ok := extensions[ext]; !ok {
			return false
		}

		for _, re := range regexes {
			if re.MatchString(filepath.ToSlash(string(path))) {
				return false
			}
		}

		return true
	}, nil
}

func parallelism(flag, configured int) int {
	if flag > 0 {
		return flag
	}

	if configured > 0 {
		return configured
	}

	return runtime.GOMAXPROCS(0)
}
