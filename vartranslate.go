package hbetl

import "strings"

// translateVariable implements the variable translation contract
// (spec.md §4.G "Variable translation contract"):
//
//  1. Strip a leading "@root." if present.
//  2. Split on ".".
//  3. A single segment S becomes "@S" (or bare "S" if S starts with
//     "this").
//  4. Multiple segments S, k1, k2, ... become
//     "get_in(@S, [:k1, :k2, ...])" (or "get_in(S, ...)" if S starts
//     with "this").
//
// @root. is stripped as a literal prefix rather than a character-trim
// of the set {@, r, o, t, .} (see DESIGN.md "Open Question decisions")
// so an identifier like "@root.total" can't have its own leading/
// trailing characters eaten.
func translateVariable(raw string) string {
	v := strings.TrimPrefix(raw, "@root.")
	segs := strings.Split(v, ".")

	root := segs[0]
	prefixed := root
	if !strings.HasPrefix(root, "this") {
		prefixed = "@" + root
	}

	if len(segs) == 1 {
		return prefixed
	}

	keys := make([]string, 0, len(segs)-1)
	for _, s := range segs[1:] {
		keys = append(keys, ":"+s)
	}
	return "get_in(" + prefixed + ", [" + strings.Join(keys, ", ") + "])"
}

// translateQuoted re-emits a quoted literal argument verbatim as a
// double-quoted ETL string literal.
func translateQuoted(value string) string {
	return "\"" + value + "\""
}

// translateArg renders a single ArgModel the way the dialect helpers
// need it inside generated ETL: quoted literals pass through verbatim,
// unquoted tokens go through the variable translation contract.
func translateArg(a ArgModel) string {
	if a.Quoted {
		return translateQuoted(a.Value)
	}
	return translateVariable(a.Value)
}
