package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates configuration layers in priority order and folds
// them into a single [StructuredConfig]. Broken sources are collected rather
// than aborting immediately, so build reports every failing source at once.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 3)}
}

// add records one source layer. Earlier layers win: the merge only fills
// fields no previous layer has set.
func (b *configBuilder) add(layer *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) fail(err error) *configBuilder {
	b.err = errors.Join(b.err, err)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := new(StructuredConfig)
	if err := parseEnv(layer); err != nil {
		return b.fail(err)
	}
	return b.add(layer)
}

// withFlags parses args against fs and records the result as a layer. The
// flag set comes in from the caller so tests can feed an arbitrary argument
// slice without touching the process-global flag.CommandLine.
func (b *configBuilder) withFlags(fs flagSet, args []string) *configBuilder {
	return b.add(parseFlagSet(fs, args))
}

// withJSON loads the file named by the last recorded layer that carries a
// JSONFilePath. When no layer names one, the layer list is left as is.
func (b *configBuilder) withJSON() *configBuilder {
	var path string
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	layer, err := parseJSON(path)
	if err != nil {
		return b.fail(err)
	}
	return b.add(layer)
}

// build merges the recorded layers first-wins and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("merging config layers: %w", err)
		}
	}

	return merged, merged.validate()
}
