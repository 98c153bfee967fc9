package hbetl

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// injectedExpressionPattern is the pre-scan of spec.md §3/§6: any input
// already containing `<% ... %>` is rejected before parsing begins, as
// an injection defense against templates that smuggle in ETL directly.
var injectedExpressionPattern = regexp.MustCompile(`(?s)<%.*?%>`)

const (
	rawBlockOpen  = "{{{{"
	rawBlockClose = "{{{{/"
	longComment   = "{{!--"
	longCommentC  = "--}}"
	shortComment  = "{{!"
	blockOpen     = "{{#"
	blockClose    = "{{/"
	partialOpen   = "{{>"
	unescapedOpen = "{{{"
	escapedOpen   = "{{"
	closer        = "}}"
)

// transpile is the tail-recursive state machine of spec.md §4.E. It
// dispatches on remaining_input by longest-prefix match (tested in the
// exact order of the §4.E table, since shorter prefixes are substrings
// of longer ones), threading an explicit block-context stack instead of
// relying on call-stack recursion for sibling tags — only nested block
// bodies and partial re-expansion actually recurse.
//
// It returns once either: all input is consumed (stack must be empty,
// or it's a MissingClose error), or a "{{/name}}" tag pops the
// innermost stack frame, handing (output, residual-input, popped-stack)
// back to the caller that opened that block.
func transpile(input string, reg *Registry, stack []string, matcher *prefixMatcher) (string, string, []string, error) {
	var out strings.Builder

	for {
		if input == "" {
			if len(stack) == 0 {
				return out.String(), "", stack, nil
			}
			return "", "", stack, errMissingClose(stack[len(stack)-1])
		}

		switch {
		case strings.HasPrefix(input, rawBlockOpen):
			consumed, tail, err := transpileRawBlock(input, reg, matcher)
			if err != nil {
				return "", "", stack, err
			}
			out.WriteString(consumed)
			input = tail

		case strings.HasPrefix(input, longComment):
			tag, tail, err := accumulateTag(input[len(longComment):], longCommentC, "", matcher)
			if err != nil {
				return "", "", stack, err
			}
			out.WriteString("<%#" + tag.RawContents + "%>")
			input = tail

		case strings.HasPrefix(input, shortComment):
			tag, tail, err := accumulateTag(input[len(shortComment):], closer, "{", matcher)
			if err != nil {
				return "", "", stack, err
			}
			out.WriteString("<%#" + tag.RawContents + "%>")
			input = tail

		case strings.HasPrefix(input, blockOpen):
			tag, afterOpen, err := accumulateTag(input[len(blockOpen):], closer, "{", matcher)
			if err != nil {
				return "", "", stack, err
			}
			if tag.Name == "" {
				return "", "", stack, errNameRequired("Block")
			}

			childStack := append(append([]string{}, stack...), tag.Name)
			body, tailAfterClose, newStack, err := transpile(afterOpen, reg, childStack, matcher)
			if err != nil {
				return "", "", stack, err
			}
			tag.BlockContents = body

			result, err := reg.lookupBlock(tag.Name)(tag)
			if err != nil {
				return "", "", stack, err
			}
			out.WriteString(result)
			input = tailAfterClose
			stack = newStack

		case strings.HasPrefix(input, blockClose):
			tag, afterClose, err := accumulateTag(input[len(blockClose):], closer, "{", matcher)
			if err != nil {
				return "", "", stack, err
			}
			if tag.Name == "" {
				return "", "", stack, errNameRequired("Block-closing")
			}
			if len(stack) == 0 {
				return "", "", stack, errUnexpectedClose()
			}
			top := stack[len(stack)-1]
			if top != tag.Name {
				return "", "", stack, errWrongClose(top)
			}
			return out.String(), afterClose, stack[:len(stack)-1], nil

		case strings.HasPrefix(input, partialOpen):
			tag, afterTag, err := accumulateTag(input[len(partialOpen):], closer, "{", matcher)
			if err != nil {
				return "", "", stack, err
			}
			if tag.Name == "" {
				return "", "", stack, errNameRequired("Partial")
			}

			fragment, err := reg.lookupPartial(tag.Name)(tag)
			if err != nil {
				return "", "", stack, err
			}

			subOutput, _, _, err := transpile(fragment, reg, stack, matcher)
			if err != nil {
				return "", "", stack, err
			}
			out.WriteString(subOutput)
			input = afterTag

		case strings.HasPrefix(input, unescapedOpen):
			tag, afterTag, err := accumulateTag(input[len(unescapedOpen):], "}}}", "{", matcher)
			if err != nil {
				return "", "", stack, err
			}
			if tag.Name == "" {
				return "", "", stack, errNameRequired("Unescaped")
			}
			if tag.RawOptions != "" {
				return "", "", stack, errOptionsNotAllowed()
			}

			result, err := reg.lookupUnescaped()(tag)
			if err != nil {
				return "", "", stack, err
			}
			out.WriteString(result)
			input = afterTag

		case strings.HasPrefix(input, escapedOpen):
			tag, afterTag, err := accumulateTag(input[len(escapedOpen):], closer, "{", matcher)
			if err != nil {
				return "", "", stack, err
			}
			if tag.Name == "" {
				return "", "", stack, errNameRequired("Escaped")
			}

			result, err := reg.lookupHelper(tag.Name)(tag)
			if err != nil {
				return "", "", stack, err
			}
			out.WriteString(result)
			input = afterTag

		case strings.HasPrefix(input, closer):
			return "", "", stack, errStrayCloser(firstRunes(out.String(), 32))

		default:
			r, size := utf8.DecodeRuneInString(input)
			out.WriteRune(r)
			input = input[size:]
		}
	}
}

// transpileRawBlock handles the raw 4-brace block form of spec.md §4.E:
// its body is passed through verbatim as BlockContents without being
// re-parsed, and must be closed by the literal substring "{{{{/NAME}}}}".
func transpileRawBlock(input string, reg *Registry, matcher *prefixMatcher) (string, string, error) {
	tag, afterOpen, err := accumulateTag(input[len(rawBlockOpen):], "}}}}", "{", matcher)
	if err != nil {
		return "", "", err
	}
	if tag.Name == "" {
		return "", "", errNameRequired("Raw block")
	}

	idx := strings.Index(afterOpen, rawBlockClose)
	if idx < 0 {
		return "", "", errMissingClose(tag.Name)
	}
	body := afterOpen[:idx]
	afterMarker := afterOpen[idx+len(rawBlockClose):]

	closeTag, tailAfterClose, err := accumulateTag(afterMarker, "}}}}", "{", matcher)
	if err != nil {
		return "", "", err
	}
	if closeTag.Name == "" {
		return "", "", errNameRequired("Raw block-closing")
	}
	if closeTag.Name != tag.Name {
		return "", "", errWrongClose(tag.Name)
	}

	tag.BlockContents = body
	result, err := reg.lookupBlock(tag.Name)(tag)
	if err != nil {
		return "", "", err
	}
	return result, tailAfterClose, nil
}

// firstRunes returns up to n leading runes of s.
func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
