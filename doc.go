// Package hbetl transpiles Handlebars-style source templates into ETL
// (Embedded Template Language) strings — the same family of `<%= %>` /
// `<% %>` / `<%# %>` markers used by EEx-like renderers. The transpiler
// never evaluates a template; it only rewrites tags into equivalent ETL
// text.
//
// Current caveats
//   - Thread-safety: Compile never modifies a *Registry, so one that
//     nobody registers on can be shared across goroutines;
//     RegisterHelper/RegisterBlock/RegisterPartial modify the registry in
//     place (Clone first to leave a shared one untouched) and are not safe
//     to call concurrently with Compile.
//   - Options: a Handlebars option string is either a bare token (an
//     identifier path) or `"a quoted literal"`; there is no hash-argument
//     map syntax beyond simple `key=value` pairs.
//
// A tiny example:
//
//	out, err := hbetl.Compile(`<p>Hello {{ firstName }}</p>`)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(out) // <p>Hello <%= @firstName %></p>
package hbetl
