package hbetl

// helpers_common.go implements the helper/block-helper callbacks shared
// by both the Base and Sendgrid dialects (spec.md §4.G): else, if,
// unless, each/foreach, raw, log, @index, @key. Each dialect's
// declarative YAML bundle (dialectconfig.go) wires these by name.

// elseHelper is the plain (non-block) "else" helper used inside an
// if/unless body. It always emits the catch-all clause of the
// surrounding `cond do ... end`; a conditioned "else if"/"else unless"/
// comparison variant instead emits its own clause (helpers_sendgrid.go).
func elseHelper(TagModel) (string, error) {
	return "<% true -> %>", nil
}

// ifHelper implements `{{#if cond}}...{{else}}...{{/if}}`. It always
// appends an implicit `true -> nil` catch-all clause after the body
// (spec.md §8 scenario 3), regardless of whether the body used an
// explicit {{else}} — Elixir's `cond` raises if no clause matches, so a
// safe fallback is always required.
func ifHelper(tag TagModel) (string, error) {
	if tag.RawOptions == "" {
		return "", errDialectSpecific("The if helper requires options, e.g. {{#if options}}")
	}
	cond := translateVariable(tag.RawOptions)
	return "<%= cond do %>\n<% " + cond + " -> %>" + tag.BlockContents + "<% true -> %><% nil %>\n<% end %>\n", nil
}

// unlessHelper implements `{{#unless cond}}...{{/unless}}`. Unlike
// ifHelper it does not append an implicit catch-all (spec.md §8
// scenario 4 shows no trailing "true -> nil" clause), so when the
// negated condition is false and the body holds no {{else}} clause, no
// clause of the emitted `cond` matches.
func unlessHelper(tag TagModel) (string, error) {
	if tag.RawOptions == "" {
		return "", errDialectSpecific("The unless helper requires options, e.g. {{#unless options}}")
	}
	cond := translateVariable(tag.RawOptions)
	return "<%= cond do %>\n<% !" + cond + " -> %>" + tag.BlockContents + "<% end %>\n", nil
}

// eachHelper implements `{{#each collection}}...{{/each}}` (and its
// "foreach" alias). Per spec.md §9, the ETL `for` comprehension produces
// a list rather than concatenated text; the test fixtures accept this
// and this transpiler reproduces it byte-for-byte rather than
// "correcting" it with string-building glue.
func eachHelper(tag TagModel) (string, error) {
	if tag.RawOptions == "" {
		return "", errDialectSpecific("The each helper requires options, e.g. {{#each options}}")
	}
	collection := translateVariable(tag.RawOptions)
	return "<%= for item <- " + collection + " do %>" + tag.BlockContents + "<% end %>\n", nil
}

// rawHelper implements `{{#raw}}...{{/raw}}`, a block whose contents
// (already recursively transpiled by the parser, per spec.md §4.E) pass
// through unchanged — it exists to let a template author visually fence
// off a region without adding any ETL wrapping of its own.
func rawHelper(tag TagModel) (string, error) {
	return tag.BlockContents, nil
}

// indexHelper implements the `{{@index}}` fallback variable available
// inside an each/foreach body.
func indexHelper(TagModel) (string, error) {
	return "<%= @index %>", nil
}

// keyHelper implements the `{{@key}}` fallback variable available
// inside an each/foreach body over a map.
func keyHelper(TagModel) (string, error) {
	return "<%= @key %>", nil
}

// newLogHelper builds the `{{log message}}` helper. It logs the tag's
// raw option string at Debug level and produces no visible ETL output —
// unlike the rest of this package it has exactly one side effect
// (emitting a log line), which is why it needs to close over a Logger
// rather than being a bare function like its siblings.
func newLogHelper(logger Logger) HelperFunc {
	if logger == nil {
		logger = nopLogger{}
	}
	return func(tag TagModel) (string, error) {
		logger.Debug(tag.RawOptions)
		return "", nil
	}
}
