// The enumc command generates enum reflection code from a YAML manifest.
//
// A one-shot run reads the manifest, applies the flag overrides and
// writes the generated package next to the manifest (or into -target):
//
//	enumc -config ./enumc.yml
//
// With -watch the command keeps running and regenerates whenever the
// manifest changes, printing one line per pass.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/byBretema/enumc/compiler"
	"github.com/byBretema/enumc/compiler/gen"
	"github.com/byBretema/enumc/compiler/load"
)

var (
	configPath = flag.String("config", "enumc.yml", "path to the enum manifest")
	target     = flag.String("target", "", "target directory for the generated files (defaults to the manifest setting)")
	pkg        = flag.String("pkg", "", "import path of the generated package (defaults to the manifest setting)")
	features   = flag.String("feature", "", "comma-separated feature-flags to enable (e.g. codec/text,snapshot)")
	watch      = flag.Bool("watch", false, "regenerate whenever the manifest changes")
)

func main() {
	flag.Parse()
	if *watch {
		if err := watchLoop(); err != nil {
			fail(err)
		}
		return
	}
	cfg, err := config()
	if err != nil {
		fail(err)
	}
	if err := compiler.Generate(*configPath, cfg); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "enumc: %v\n", err)
	os.Exit(1)
}

// config builds the flag-level config. Each watch pass starts from a
// fresh one, so settings a previous manifest filled in cannot leak into
// the next run.
func config() (*gen.Config, error) {
	cfg := &gen.Config{Package: *pkg, Target: *target}
	var names []string
	for _, name := range strings.Split(*features, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		if err := gen.WithFeatureNames(names...)(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func watchLoop() error {
	manifest, err := filepath.Abs(*configPath)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Editors replace files on save, which drops a file-level watch.
	// Watching the directory keeps the manifest covered across renames.
	if err := watcher.Add(filepath.Dir(manifest)); err != nil {
		return err
	}

	cache := load.NewCache()
	regen(cache, manifest)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != manifest || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			regen(cache, manifest)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "enumc: watch: %v\n", err)
		}
	}
}

// regen runs a single generation pass. A failing pass is reported and
// the watch continues, so a broken intermediate save does not kill the
// loop. Saves that leave the manifest byte-identical are skipped.
func regen(cache *load.Cache, manifest string) {
	m, changed, err := cache.Load(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "enumc: %v\n", err)
		return
	}
	if !changed {
		return
	}
	if err := generate(m, manifest); err != nil {
		// Drop the cache entry so the next event retries, even when the
		// save leaves the file byte-identical.
		cache.Invalidate(manifest)
		fmt.Fprintf(os.Stderr, "enumc: %v\n", err)
	}
}

// generate runs the codegen for a decoded manifest.
func generate(m *load.Manifest, manifest string) error {
	cfg, err := config()
	if err != nil {
		return err
	}
	graph, err := compiler.NewGraph(m, cfg, filepath.Dir(manifest))
	if err != nil {
		return err
	}
	if err := graph.Gen(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "enumc: generated %d enums into %s\n", len(graph.Nodes), cfg.Target)
	return nil
}
