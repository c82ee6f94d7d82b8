package gen

import (
	"io/fs"
	"text/template"
)

type (
	// Template wraps text/template.Template, seeded with the Funcs map
	// declared in func.go. Extensions use it to attach additional files
	// to the generated package.
	Template struct {
		*template.Template
		FuncMap template.FuncMap

		condition func(*Graph) bool
	}

	// GraphTemplate defines a standalone template executed on the graph,
	// with its output written to the configured target. The template body
	// is resolved by name from the templates registered on the config.
	GraphTemplate struct {
		// Name of the template.
		Name string

		// Format of the file written under the target directory.
		Format string

		// Skip provides an optional predicate for skipping the template
		// on a given graph.
		Skip func(*Graph) bool
	}
)

// NewTemplate creates an empty template with the standard codegen functions.
func NewTemplate(name string) *Template {
	t := &Template{Template: template.New(name)}
	return t.Funcs(Funcs)
}

// Funcs merges the given funcMap with the template functions.
func (t *Template) Funcs(funcMap template.FuncMap) *Template {
	t.Template.Funcs(funcMap)
	if t.FuncMap == nil {
		t.FuncMap = template.FuncMap{}
	}
	for name, f := range funcMap {
		if _, ok := t.FuncMap[name]; !ok {
			t.FuncMap[name] = f
		}
	}
	return t
}

// SkipIf registers a predicate that reports if the template should be
// skipped for the given graph.
func (t *Template) SkipIf(cond func(*Graph) bool) *Template {
	t.condition = func(g *Graph) bool { return !cond(g) }
	return t
}

// Parse parses text as a template body for t.
func (t *Template) Parse(text string) (*Template, error) {
	if _, err := t.Template.Parse(text); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseFiles parses a list of files as templates and associates them with t.
func (t *Template) ParseFiles(filenames ...string) (*Template, error) {
	if _, err := t.Template.ParseFiles(filenames...); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseGlob parses the files matched by the pattern and associates them
// with t.
func (t *Template) ParseGlob(pattern string) (*Template, error) {
	if _, err := t.Template.ParseGlob(pattern); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseFS is like ParseFiles or ParseGlob, but reads from the file system
// fsys instead of the host operating system. Extensions usually embed
// their template files and pass them with this method.
func (t *Template) ParseFS(fsys fs.FS, patterns ...string) (*Template, error) {
	if _, err := t.Template.ParseFS(fsys, patterns...); err != nil {
		return nil, err
	}
	return t, nil
}

// MustParse is a helper that wraps a call to a function returning
// (*Template, error) and panics if the error is non-nil.
func MustParse(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}
