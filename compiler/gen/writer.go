package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"text/template/parse"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// TemplateWriter executes the templates attached to the config and writes
// their output next to the emitted enum files. Execution is parallel and
// the output is passed through goimports before it hits the disk.
type TemplateWriter struct {
	graph   *Graph
	outDir  string
	workers int

	// Metrics for performance monitoring.
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks template output volume.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
}

// NewTemplateWriter creates a template writer for the graph.
func NewTemplateWriter(g *Graph, outDir string) *TemplateWriter {
	return &TemplateWriter{
		graph:   g,
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *TemplateWriter) WithWorkers(n int) *TemplateWriter {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the writer metrics.
func (w *TemplateWriter) Metrics() *WriterMetrics {
	return w.metrics
}

// templateTask represents a single template execution.
type templateTask struct {
	name   string // template name to execute
	format string // output file path, relative to outDir
}

// Write executes the registered templates against the graph.
//
// Every template defined by the registered roots produces a standalone
// file named after it, unless a feature-flag claims the template through
// a GraphTemplate entry. Claimed templates are written to the path the
// feature declares instead. Templates parsed from files keep this rule,
// so a ParseFiles root contributes one output file per parsed file.
// Defined names containing a slash are helpers and are never written on
// their own.
func (w *TemplateWriter) Write(ctx context.Context) error {
	if len(w.graph.Templates) == 0 {
		return nil
	}
	root, err := w.root()
	if err != nil {
		return err
	}

	// Feature-flags claim templates by name and decide their location.
	claimed := make(map[string]bool)
	var tasks []templateTask
	for _, feat := range w.graph.Features {
		for _, gt := range feat.GraphTemplates {
			claimed[gt.Name] = true
			if gt.Skip != nil && gt.Skip(w.graph) {
				continue
			}
			if root.Lookup(gt.Name) == nil {
				continue
			}
			tasks = append(tasks, templateTask{name: gt.Name, format: gt.Format})
		}
	}
	seen := make(map[string]bool)
	for _, tmpl := range w.graph.Templates {
		if tmpl.condition != nil && !tmpl.condition(w.graph) {
			continue
		}
		for _, t := range tmpl.Templates() {
			// An unparsed root or a file holding only define blocks has
			// nothing to execute on its own.
			if t.Tree == nil || parse.IsEmptyTree(t.Root) {
				continue
			}
			name := t.Name()
			if claimed[name] || seen[name] || strings.Contains(name, "/") {
				continue
			}
			seen[name] = true
			tasks = append(tasks, templateTask{name: name, format: formatName(name)})
		}
	}

	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return NewGenerationError("template", w.outDir, "create output directory", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, task := range tasks {
		task := task
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.exec(root, task)
			}
		})
	}
	return eg.Wait()
}

// root merges all registered templates into a single namespace, so that
// graph templates declared by one extension can reference helpers parsed
// by another.
func (w *TemplateWriter) root() (*Template, error) {
	root := NewTemplate("templates")
	for _, tmpl := range w.graph.Templates {
		root.Funcs(tmpl.FuncMap)
		for _, t := range tmpl.Templates() {
			if t.Tree == nil {
				continue
			}
			if _, err := root.AddParseTree(t.Name(), t.Tree); err != nil {
				return nil, NewGenerationError("template", t.Name(), "merge template", err)
			}
		}
	}
	return root, nil
}

// exec runs a single template and writes its output.
func (w *TemplateWriter) exec(root *Template, task templateTask) error {
	var buf bytes.Buffer
	if err := root.ExecuteTemplate(&buf, task.name, w.graph); err != nil {
		return NewGenerationError("template", task.format, "execute template", err)
	}
	fullPath := filepath.Join(w.outDir, task.format)

	// goimports prunes unused imports and resolves missing ones, which
	// keeps hand-written templates honest.
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Keep the raw output around for debugging a broken template.
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return NewGenerationError("format", task.format, "format template output", err)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return NewGenerationError("write", task.format, "create output directory", err)
	}
	if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
		return NewGenerationError("write", task.format, "write output file", err)
	}

	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(formatted))
	w.mu.Unlock()
	return nil
}

// formatName derives the output file name of a standalone template.
// A ".tmpl" extension is dropped, so the file audit.tmpl comes out as
// audit.go.
func formatName(name string) string {
	name = strings.TrimSuffix(name, ".tmpl")
	if strings.HasSuffix(name, ".go") {
		return name
	}
	return snake(name) + ".go"
}

// writeTemplates executes the templates registered on the config. It runs
// after the emitter, so template output may extend the generated package.
func writeTemplates(g *Graph) error {
	return NewTemplateWriter(g, g.Target).Write(context.Background())
}
