package hbetl

import (
	"strings"
	"unicode"
)

// accumulateTag performs the single left-to-right scan of spec.md §4.D:
// given the slice immediately following an opening delimiter, it reads
// characters until it finds closingDelimiter, rejecting any rune in
// forbiddenChars along the way. It returns the constructed TagModel plus
// the residual input following the closing delimiter.
//
// forbiddenChars is always either "" (inside comments) or "{" (almost
// everywhere else): a nested '{' inside a tag is always a parse error.
func accumulateTag(input string, closingDelimiter string, forbiddenChars string, matcher *prefixMatcher) (TagModel, string, error) {
	width := len(closingDelimiter)
	runes := []rune(input)
	var acc strings.Builder

	for i := 0; i < len(runes); i++ {
		if matchesAt(runes, i, closingDelimiter, width) {
			residual := string(runes[i+width:])
			tag, err := makeTag(acc.String(), matcher)
			if err != nil {
				return TagModel{}, "", err
			}
			tag.OpeningDelimiter, tag.ClosingDelimiter = "", closingDelimiter
			return tag, residual, nil
		}

		ch := runes[i]
		if forbiddenChars != "" && strings.ContainsRune(forbiddenChars, ch) {
			return TagModel{}, "", errForbiddenChar(ch, acc.String())
		}
		acc.WriteRune(ch)
	}

	return TagModel{}, "", errUnclosedTag()
}

// matchesAt reports whether runes[i:i+width] equals delim, treating
// delim's rune width (not byte width) for the comparison since the
// delimiters themselves are always ASCII.
func matchesAt(runes []rune, i int, delim string, width int) bool {
	if i+width > len(runes) {
		return false
	}
	return string(runes[i:i+width]) == delim
}

// makeTag trims the accumulated text and splits it into a name and a
// raw option string (spec.md §4.D "MakeTag"). If a HelperPrefixMatcher
// is supplied and matches, its longest registered-name prefix wins over
// a first-whitespace split, so multi-word helper names like "else if"
// are recognized as one name.
func makeTag(raw string, matcher *prefixMatcher) (TagModel, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return TagModel{RawContents: raw}, nil
	}

	if matcher != nil {
		if name, rest, ok := matcher.match(trimmed); ok {
			return buildTag(raw, name, strings.TrimSpace(rest))
		}
	}

	name, rest := splitOnFirstSpace(trimmed)
	return buildTag(raw, name, rest)
}

func buildTag(raw, name, options string) (TagModel, error) {
	tag := TagModel{
		Name:        name,
		RawContents: raw,
		RawOptions:  options,
	}
	if options != "" {
		args, kwargs, err := lexOptions(options)
		if err != nil {
			return TagModel{}, err
		}
		tag.Args = args
		tag.Kwargs = kwargs
	} else {
		tag.Kwargs = map[string]ArgModel{}
	}
	return tag, nil
}

// splitOnFirstSpace splits on the first Unicode space-separator code
// point, returning at most two parts. If there is no such rune, the
// whole string is the name and options is empty.
func splitOnFirstSpace(s string) (name, rest string) {
	runes := []rune(s)
	for i, r := range runes {
		if unicode.Is(unicode.Zs, r) {
			return string(runes[:i]), strings.TrimSpace(string(runes[i+1:]))
		}
	}
	return s, ""
}
