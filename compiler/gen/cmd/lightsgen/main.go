// lightsgen regenerates the committed enum fixtures under internal/lights.
// The fixtures are the subject of the runtime tests, which check the
// generated contract on real compiled output instead of rendered strings.
//
// Run from compiler/gen: go run ./cmd/lightsgen
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/byBretema/enumc/compiler/gen"
	"github.com/byBretema/enumc/compiler/load"
)

func main() {
	specs := []*load.Spec{
		{
			Name:       "LightsView",
			Underlying: "uint32",
			Sentinel:   true,
			Members:    []string{"Simplified", "Detailed"},
			Comment:    "LightsView selects the level of detail used for rendered lights.",
		},
		{
			Name:       "RenderMode",
			Underlying: "uint32",
			Members:    []string{"Simplified", "Detailed", "Complex"},
		},
		{
			Name:         "Direction",
			Underlying:   "int8",
			Sentinel:     true,
			SentinelName: "Still",
			Members:      []string{"North", "East", "South", "West"},
		},
		{
			Name:       "Palette",
			Underlying: "uint8",
			Members: []string{
				"Red", "Orange", "Yellow", "Green", "Cyan",
				"Blue", "Violet", "Magenta", "White", "Black",
			},
		},
	}

	cfg, err := gen.NewConfig(
		gen.WithPackage("github.com/byBretema/enumc/compiler/gen/internal/lights"),
		gen.WithTarget("internal/lights"),
		gen.WithFeatureNames(gen.FeatureSQLCodec.Name, gen.FeatureGraphQLCodec.Name),
	)
	if err != nil {
		fail(err)
	}
	graph, err := gen.NewGraph(cfg, specs...)
	if err != nil {
		fail(err)
	}
	if err := graph.Gen(); err != nil {
		fail(err)
	}

	entries, err := os.ReadDir(cfg.Target)
	if err != nil {
		fail(err)
	}
	for _, e := range entries {
		fmt.Println(filepath.Join(cfg.Target, e.Name()))
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "lightsgen: %v\n", err)
	os.Exit(1)
}
