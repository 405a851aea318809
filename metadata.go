package xcsv

import (
	"fmt"
	"strings"
)

// Metadata section names accepted by the [Document] accessors.
const (
	// SectionHeader selects the extended header section.
	SectionHeader = "header"
	// SectionColumnHeaders selects the column-headers section.
	SectionColumnHeaders = "column_headers"
)

// HeaderValue is one parsed header item: a plain [Scalar], a value/units
// [Pair], or a [List] accumulated from continuation lines.
type HeaderValue interface {
	headerValue()
}

// Scalar is a plain-text header item value.
type Scalar string

func (Scalar) headerValue() {}

// Pair is a header item value with a units clause, e.g. "1897 (m a.s.l.)".
type Pair struct {
	Value string
	Units string
}

func (Pair) headerValue() {}

// String renders the pair as it appears in a file.
func (p Pair) String() string {
	return p.Value + " (" + p.Units + ")"
}

// Tokens converts the pair to its [FileHeaderTokens] form.
func (p Pair) Tokens() FileHeaderTokens {
	units := p.Units

	return FileHeaderTokens{Value: p.Value, Units: &units}
}

// List is a header item accumulated from a keyed line plus continuation
// lines. Elements are normally Scalars; a Pair can appear transiently when a
// Pair-valued key is promoted to a list, and any attempt to rejoin such a
// list fails with [ErrAmbiguousListItem].
type List []HeaderValue

func (List) headerValue() {}

// Join recombines the list into the newline-separated text it was read from.
// It fails with [ErrAmbiguousListItem] when any element is a [Pair].
func (l List) Join() (string, error) {
	parts := make([]string, len(l))

	for i, element := range l {
		scalar, ok := element.(Scalar)
		if !ok {
			return "", ambiguousListItemError(l)
		}

		parts[i] = string(scalar)
	}

	return strings.Join(parts, "\n"), nil
}

// ambiguousListItemError builds the ErrAmbiguousListItem failure for a list
// containing a Pair, reconstructing the offending line and its parsed
// components so the user can see where an escape is missing.
func ambiguousListItemError(l List) error {
	for _, element := range l {
		pair, ok := element.(Pair)
		if !ok {
			continue
		}

		return fmt.Errorf("%w: the line %q was parsed as {value: %q, units: %q}; "+
			"if it was meant as plain continuation text, make sure it does not end with a "+
			"closing parenthesis, either by removing the parentheses or by adding text "+
			"after them (a '.' suffices)",
			ErrAmbiguousListItem, pair.String(), pair.Value, pair.Units)
	}

	return ErrAmbiguousListItem
}

// Metadata holds both metadata sections of a parsed document.
type Metadata struct {
	Header        *HeaderMap       `json:"header"`
	ColumnHeaders *ColumnHeaderMap `json:"column_headers"`
}

// HeaderMap is an insertion-ordered mapping from header keys to values. Key
// order is significant: it is preserved for exact reconstruction on write.
type HeaderMap struct {
	entries []headerEntry
	index   map[string]int
}

type headerEntry struct {
	key   string
	value HeaderValue
}

// NewHeaderMap creates an empty [HeaderMap].
func NewHeaderMap() *HeaderMap {
	return &HeaderMap{index: map[string]int{}}
}

// Len returns the number of keys.
func (m *HeaderMap) Len() int {
	return len(m.entries)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *HeaderMap) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}

	return keys
}

// Get returns the value stored under key.
func (m *HeaderMap) Get(key string) (HeaderValue, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}

	return m.entries[i].value, true
}

// Set stores value under key, replacing any previous value but keeping the
// key's original position.
func (m *HeaderMap) Set(key string, value HeaderValue) {
	if i, ok := m.index[key]; ok {
		m.entries[i].value = value

		return
	}

	m.index[key] = len(m.entries)
	m.entries = append(m.entries, headerEntry{key: key, value: value})
}

// Add stores value under key with set-or-append semantics: a new key takes
// the value directly, a key holding a scalar or pair is promoted to a
// two-element list, and a key holding a list appends.
//
// Appending a [Pair] into a list is a hard failure: list items are later
// rejoined as plain text, which a pair cannot be. The value is stored before
// the failure is reported, matching how the item would have been read.
func (m *HeaderMap) Add(key string, value HeaderValue) error {
	i, ok := m.index[key]
	if !ok {
		m.index[key] = len(m.entries)
		m.entries = append(m.entries, headerEntry{key: key, value: value})

		return nil
	}

	switch prev := m.entries[i].value.(type) {
	case List:
		m.entries[i].value = append(prev, value)
	default:
		m.entries[i].value = List{prev, value}
	}

	if _, isPair := value.(Pair); isPair {
		return ambiguousListItemError(m.entries[i].value.(List))
	}

	return nil
}

// ColumnHeaderMap is an insertion-ordered mapping from verbatim column
// labels to their parsed tokens.
type ColumnHeaderMap struct {
	entries []columnHeaderEntry
	index   map[string]int
}

type columnHeaderEntry struct {
	label  string
	tokens ColumnHeaderTokens
}

// NewColumnHeaderMap creates an empty [ColumnHeaderMap].
func NewColumnHeaderMap() *ColumnHeaderMap {
	return &ColumnHeaderMap{index: map[string]int{}}
}

// Len returns the number of labels.
func (m *ColumnHeaderMap) Len() int {
	return len(m.entries)
}

// Labels returns the column labels in insertion order. The returned slice is
// a copy.
func (m *ColumnHeaderMap) Labels() []string {
	labels := make([]string, len(m.entries))
	for i, e := range m.entries {
		labels[i] = e.label
	}

	return labels
}

// Get returns the tokens stored under the verbatim label.
func (m *ColumnHeaderMap) Get(label string) (ColumnHeaderTokens, bool) {
	i, ok := m.index[label]
	if !ok {
		return ColumnHeaderTokens{}, false
	}

	return m.entries[i].tokens, true
}

// Set stores tokens under label, replacing any previous entry but keeping
// the label's original position.
func (m *ColumnHeaderMap) Set(label string, tokens ColumnHeaderTokens) {
	if i, ok := m.index[label]; ok {
		m.entries[i].tokens = tokens

		return
	}

	m.index[label] = len(m.entries)
	m.entries = append(m.entries, columnHeaderEntry{label: label, tokens: tokens})
}

// ParseColumnHeaders builds a [ColumnHeaderMap] from column labels. With
// parseMetadata, each label is run through [ParseColumnHeaderTokens];
// without it, the name is the verbatim label and units/notes stay absent.
func ParseColumnHeaders(labels []string, parseMetadata bool) *ColumnHeaderMap {
	m := NewColumnHeaderMap()

	for _, label := range labels {
		if !parseMetadata {
			m.Set(label, ColumnHeaderTokens{Name: label})

			continue
		}

		// An unparseable label keeps its map slot with empty tokens.
		tokens, _ := ParseColumnHeaderTokens(label)
		m.Set(label, tokens)
	}

	return m
}
