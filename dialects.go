package hbetl

import "strings"

// dialects.go declares the Base and Sendgrid default registries of
// spec.md §4.G as YAML bundles (dialectconfig.go) wired to the Go
// callbacks in helpers_common.go / helpers_sendgrid.go.

const baseDialectYAML = `
helpers:
  - else
  - log
  - "@index"
  - "@key"
block_helpers:
  - if
  - each
  - foreach
  - raw
  - unless
partials: []
`

const sendgridDialectYAML = `
helpers:
  - else
  - log
  - "@index"
  - "@key"
  - else and
  - else equals
  - else greaterThan
  - else if
  - else lessThan
  - else notEquals
  - else or
  - else unless
  - insert
block_helpers:
  - if
  - unless
  - greaterThan
  - lessThan
  - equals
  - notEquals
  - and
  - or
  - each
  - raw
partials: []
`

var baseDialectSpec = mustLoadDialectSpec(baseDialectYAML)
var sendgridDialectSpec = mustLoadDialectSpec(sendgridDialectYAML)

func commonHelperImpls() map[string]HelperFunc {
	return map[string]HelperFunc{
		"else":   elseHelper,
		"log":    newLogHelper(nopLogger{}),
		"@index": indexHelper,
		"@key":   keyHelper,
	}
}

func commonBlockImpls() map[string]HelperFunc {
	return map[string]HelperFunc{
		"if":      ifHelper,
		"each":    eachHelper,
		"foreach": eachHelper,
		"raw":     rawHelper,
		"unless":  unlessHelper,
	}
}

func sendgridHelperImpls() map[string]HelperFunc {
	impls := commonHelperImpls()
	impls["else and"] = elseComparisonHelper("&&")
	impls["else equals"] = elseComparisonHelper("==")
	impls["else greaterThan"] = elseComparisonHelper(">")
	impls["else if"] = elseUnaryHelper(false)
	impls["else lessThan"] = elseComparisonHelper("<")
	impls["else notEquals"] = elseComparisonHelper("!=")
	impls["else or"] = elseComparisonHelper("||")
	impls["else unless"] = elseUnaryHelper(true)
	impls["insert"] = insertHelper
	return impls
}

func sendgridBlockImpls() map[string]HelperFunc {
	impls := commonBlockImpls()
	impls["greaterThan"] = comparisonBlockHelper(">")
	impls["lessThan"] = comparisonBlockHelper("<")
	impls["equals"] = comparisonBlockHelper("==")
	impls["notEquals"] = comparisonBlockHelper("!=")
	impls["and"] = comparisonBlockHelper("&&")
	impls["or"] = comparisonBlockHelper("||")
	return impls
}

// NewBaseRegistry builds the Base dialect registry (spec.md §4.G):
// else/log/@index/@key helpers, if/each/foreach/raw/unless blocks.
func NewBaseRegistry() *Registry {
	reg, err := buildRegistry(baseDialectSpec, commonHelperImpls(), commonBlockImpls(), nil, nopLogger{})
	if err != nil {
		panic(err)
	}
	return reg
}

// NewSendgridRegistry builds the Sendgrid dialect registry (spec.md
// §4.G): the Base set plus the comparison helpers, their "else <op>"
// chaining variants, and "insert".
func NewSendgridRegistry() *Registry {
	reg, err := buildRegistry(sendgridDialectSpec, sendgridHelperImpls(), sendgridBlockImpls(), nil, nopLogger{})
	if err != nil {
		panic(err)
	}
	return reg
}

// NewBaseRegistryFromYAML and NewSendgridRegistryFromYAML let a caller
// override which names participate in a dialect, without recompiling,
// by supplying an alternate declarative bundle — the Go implementations
// behind each name are still fixed to this package's helpers.
func NewBaseRegistryFromYAML(yamlText string) (*Registry, error) {
	spec, err := LoadDialectSpec(strings.NewReader(yamlText))
	if err != nil {
		return nil, err
	}
	return buildRegistry(spec, commonHelperImpls(), commonBlockImpls(), nil, nopLogger{})
}

func NewSendgridRegistryFromYAML(yamlText string) (*Registry, error) {
	spec, err := LoadDialectSpec(strings.NewReader(yamlText))
	if err != nil {
		return nil, err
	}
	return buildRegistry(spec, sendgridHelperImpls(), sendgridBlockImpls(), nil, nopLogger{})
}
