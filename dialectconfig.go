package hbetl

import (
	"io"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// dialectSpec is the declarative shape spec.md §4.G calls "Declarative
// bundles of default helpers wiring the registry for each supported
// dialect": a plain list of names per callback kind, independent of the
// Go functions that implement them. Expressing it as YAML (rather than
// a Go literal map) is what lets a dialect be reviewed, diffed, or
// swapped without touching helper code.
type dialectSpec struct {
	Helpers      []string `yaml:"helpers"`
	BlockHelpers []string `yaml:"block_helpers"`
	Partials     []string `yaml:"partials"`
}

// LoadDialectSpec parses a YAML dialect bundle of the form:
//
//	helpers: [else, log]
//	block_helpers: [if, unless]
//	partials: []
func LoadDialectSpec(r io.Reader) (dialectSpec, error) {
	var spec dialectSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return dialectSpec{}, xerrors.Errorf("parsing dialect bundle: %w", err)
	}
	return spec, nil
}

// buildRegistry wires a dialectSpec's declared names to concrete
// implementations, erroring out (rather than silently skipping) if the
// YAML names a helper with no Go implementation registered for it —
// the declarative bundle and the Go code backing it must agree.
func buildRegistry(spec dialectSpec, helperImpls, blockImpls, partialImpls map[string]HelperFunc, logger Logger) (*Registry, error) {
	reg := NewRegistry()
	if logger != nil {
		reg = reg.WithLogger(logger)
	}

	for _, name := range spec.Helpers {
		fn, ok := helperImpls[name]
		if !ok {
			return nil, xerrors.Errorf("dialect bundle references unknown helper %q: %w", name, errHelperNotRegistered(name))
		}
		if err := reg.RegisterHelper(name, fn); err != nil {
			return nil, xerrors.Errorf("registering helper %q: %w", name, err)
		}
	}
	for _, name := range spec.BlockHelpers {
		fn, ok := blockImpls[name]
		if !ok {
			return nil, xerrors.Errorf("dialect bundle references unknown block-helper %q: %w", name, errHelperNotRegistered(name))
		}
		if err := reg.RegisterBlock(name, fn); err != nil {
			return nil, xerrors.Errorf("registering block-helper %q: %w", name, err)
		}
	}
	for _, name := range spec.Partials {
		fn, ok := partialImpls[name]
		if !ok {
			return nil, xerrors.Errorf("dialect bundle references unknown partial %q: %w", name, errPartialNotRegistered(name))
		}
		if err := reg.RegisterPartial(name, fn); err != nil {
			return nil, xerrors.Errorf("registering partial %q: %w", name, err)
		}
	}
	return reg, nil
}

func mustLoadDialectSpec(yamlText string) dialectSpec {
	spec, err := LoadDialectSpec(strings.NewReader(yamlText))
	if err != nil {
		panic(err)
	}
	return spec
}
