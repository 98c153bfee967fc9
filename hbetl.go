package hbetl

// Version is this module's version string.
const Version = "v1"

// defaultRegistry is the Base dialect registry Compile uses when the
// caller doesn't supply one.
var defaultRegistry = NewBaseRegistry()

// DefaultRegistry returns the package's Base dialect registry (spec.md
// §6 "default_registry()").
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Compile transpiles template into ETL using the Base dialect registry
// (spec.md §6 "compile(template) -> Ok(string) | Err(string)").
func Compile(template string) (string, error) {
	return CompileWithRegistry(template, defaultRegistry)
}

// CompileWithRegistry transpiles template into ETL using reg (spec.md
// §6 "compile(template, registry) -> Ok(string) | Err(string)").
func CompileWithRegistry(template string, reg *Registry) (string, error) {
	if reg == nil {
		reg = defaultRegistry
	}

	if loc := injectedExpressionPattern.FindStringIndex(template); loc != nil {
		return "", errInjectedExpression()
	}

	matcher := newPrefixMatcher(reg.helperAndBlockNames())

	out, _, stack, err := transpile(template, reg, nil, matcher)
	if err != nil {
		return "", err
	}
	if len(stack) != 0 {
		return "", errMissingClose(stack[len(stack)-1])
	}
	return out, nil
}

// MustCompile is like Compile but panics instead of returning an error
// (spec.md §6 "compile!(...) / raising variants").
func MustCompile(template string) string {
	return Must(Compile(template))
}

// MustCompileWithRegistry is like CompileWithRegistry but panics instead
// of returning an error.
func MustCompileWithRegistry(template string, reg *Registry) string {
	return Must(CompileWithRegistry(template, reg))
}

// Must panics with err if err is non-nil, otherwise returns s. This is
// how you would use it:
//
//	out := hbetl.Must(hbetl.Compile(`Hello {{ name }}!`))
func Must(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}
