package xcsv

import (
	"fmt"
	"strings"
)

// headerAccumulator consumes a document's leading comment-prefixed lines
// into an ordered [HeaderMap], one line at a time.
//
// State carried across lines is the last key seen, which continuation lines
// attach to. A continuation line comes in two forms:
//
// Simple form, with no delimiter at all:
//
//	# The second paragraph...
//
// Escaped form, with the delimiter but no key, which lets the text itself
// contain the delimiter:
//
//	# : The second paragraph that may contain a delimiter http://...
//
// A line whose key repeats the previous key behaves like the escaped form;
// that falls out of the normal keyed-line path rather than being a separate
// case.
type headerAccumulator struct {
	header        *HeaderMap
	comment       string
	delimiter     string
	currentKey    string
	parseMetadata bool
	hasKey        bool
}

func newHeaderAccumulator(comment, delimiter string, parseMetadata bool) *headerAccumulator {
	return &headerAccumulator{
		header:        NewHeaderMap(),
		comment:       comment,
		delimiter:     delimiter,
		parseMetadata: parseMetadata,
	}
}

// consume processes one header line, comment prefix still attached.
func (a *headerAccumulator) consume(line string) error {
	var value string

	left, right, found := strings.Cut(line, a.delimiter)
	if !found {
		// No delimiter: a simple-form continuation of the previous key.
		// The very first line must carry a key.
		if !a.hasKey {
			return fmt.Errorf("%w: %q", ErrMalformedHeaderStart, line)
		}

		value = strings.TrimLeft(strings.TrimSpace(line), a.comment+" ")
	} else {
		left = strings.TrimLeft(strings.TrimSpace(left), a.comment+" ")

		// A non-empty left side names a new key. An empty one is the
		// escaped continuation form.
		if left != "" {
			a.currentKey = left
			a.hasKey = true
		}

		value = strings.TrimSpace(right)
	}

	// Beware the unescaped-continuation pitfall: a continuation line that
	// contains the delimiter but was not escaped splits here as a brand-new
	// key, silently fragmenting the intended multi-line value.

	if a.parseMetadata {
		if tokens, ok := ParseFileHeaderTokens(value); ok {
			return a.header.Add(a.currentKey, Pair{Value: tokens.Value, Units: *tokens.Units})
		}
	}

	return a.header.Add(a.currentKey, Scalar(value))
}
