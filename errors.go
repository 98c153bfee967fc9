package hbetl

import "fmt"

// ErrorKind classifies a TranspileError by the table in spec.md §7. It
// lets callers branch with errors.As without parsing message text, while
// (*TranspileError).Error() still returns the bare contractual message
// the test fixtures match on.
type ErrorKind int

const (
	// KindInjectedExpression: the source already contains ETL/EEx syntax.
	KindInjectedExpression ErrorKind = iota
	// KindUnclosedTag: input ended before a requested closing delimiter.
	KindUnclosedTag
	// KindForbiddenChar: a forbidden '{' appeared inside a tag.
	KindForbiddenChar
	// KindStrayCloser: a bare "}}" appeared outside of any open tag.
	KindStrayCloser
	// KindUnexpectedClose: a closing block tag with no block open.
	KindUnexpectedClose
	// KindWrongClose: a closing block tag naming the wrong block.
	KindWrongClose
	// KindMissingClose: EOF reached with block(s) still open.
	KindMissingClose
	// KindHelperNotRegistered: no block-helper registered under that name.
	KindHelperNotRegistered
	// KindPartialNotRegistered: no partial registered under that name.
	KindPartialNotRegistered
	// KindNameRequired: a tag was parsed with an empty name.
	KindNameRequired
	// KindOptionsNotAllowed: an unescaped ({{{ }}}) tag carried options.
	KindOptionsNotAllowed
	// KindDialectSpecific: a dialect helper's own arity/shape check failed.
	KindDialectSpecific
	// KindInvalidCallbackResult: a helper callback returned an unsupported shape.
	KindInvalidCallbackResult
)

// TranspileError is the single error type Compile ever returns. Its
// Error() method intentionally contains nothing but the contractual
// message from spec.md §7 — no "[Kind]" prefix, no position — because
// the test fixtures match on literal substrings of that message. Use
// errors.As(err, &te) and inspect Kind if you need to branch on the
// failure class programmatically.
type TranspileError struct {
	Kind    ErrorKind
	Message string
}

func (e *TranspileError) Error() string {
	return e.Message
}

func newErr(kind ErrorKind, format string, args ...interface{}) *TranspileError {
	return &TranspileError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func errInjectedExpression() error {
	return newErr(KindInjectedExpression, "Compilation unsafe: the source template contains EEx expressions.")
}

func errUnclosedTag() error {
	return newErr(KindUnclosedTag, "Unclosed tag.")
}

func errForbiddenChar(ch rune, acc string) error {
	return newErr(KindForbiddenChar, "Unexpected character %c inside a tag: %s", ch, acc)
}

func errStrayCloser(outputPrefix string) error {
	return newErr(KindStrayCloser, "Unexpected closing delimiter: }}%s", outputPrefix)
}

func errUnexpectedClose() error {
	return newErr(KindUnexpectedClose, "Unexpected closing block tag.")
}

func errWrongClose(expected string) error {
	return newErr(KindWrongClose, "Unexpected closing block tag. Expected closing {{/%s}} tag.", expected)
}

func errMissingClose(top string) error {
	return newErr(KindMissingClose, "Unexpected end of template.  Closing block not found: {{/%s}}", top)
}

func errHelperNotRegistered(name string) error {
	return newErr(KindHelperNotRegistered, "Block-helper not registered: %s", name)
}

func errPartialNotRegistered(name string) error {
	return newErr(KindPartialNotRegistered, "Partial not registered: %s", name)
}

func errNameRequired(tagKind string) error {
	return newErr(KindNameRequired, "%s tags require a name, e.g. {{…}}", tagKind)
}

func errOptionsNotAllowed() error {
	return newErr(KindOptionsNotAllowed, "Non-escaped tags should not include options")
}

func errDialectSpecific(format string, args ...interface{}) error {
	return newErr(KindDialectSpecific, format, args...)
}

func errInvalidCallbackResult(helperName string, got interface{}) error {
	return newErr(KindInvalidCallbackResult, "Invalid function output. Helper %q returned %#v, expected a string or error.", helperName, got)
}
