package xcsv

import (
	"regexp"
	"strings"
)

// The two header micro-grammars. Both anchor at end of string only, matching
// the leftmost candidate, so a trailing parenthesized clause after the notes
// clause is absorbed into the greedy name group rather than rejected. That
// quirk is kept for compatibility with existing files.
var (
	// fileHeaderPattern splits a header item value into free text and a
	// trailing parenthesized units clause. Empty parens are not a units
	// clause: both groups require at least one character.
	fileHeaderPattern = regexp.MustCompile(`(?P<value>.+)\s+\((?P<units>.+)\)$`)

	// columnHeaderPattern splits a column label into a mandatory name, an
	// optional parenthesized units clause, and an optional bracketed notes
	// clause.
	columnHeaderPattern = regexp.MustCompile(`(?P<name>[^][)(]+)(\s+\((?P<units>.+)\))?(\s+\[(?P<notes>.+)\])?$`)
)

// FileHeaderTokens is the structured form of a header item value with a
// units clause, e.g. "-73.86 (degree_north)". A nil Units means the clause
// was absent.
type FileHeaderTokens struct {
	Value string  `json:"value"`
	Units *string `json:"units"`
}

// String renders the tokens as they appear in a file. Absent components are
// omitted entirely, never rendered as placeholder text.
func (t FileHeaderTokens) String() string {
	if t.Units == nil {
		return t.Value
	}

	return t.Value + " (" + *t.Units + ")"
}

// ColumnHeaderTokens is the structured form of a column label, e.g.
// "depth (m) [a]". Nil Units or Notes mean the clause was absent.
type ColumnHeaderTokens struct {
	Name  string  `json:"name"`
	Units *string `json:"units"`
	Notes *string `json:"notes"`
}

// String renders the tokens as they appear in a column label. Absent
// components are omitted entirely.
func (t ColumnHeaderTokens) String() string {
	parts := make([]string, 0, 3)
	parts = append(parts, t.Name)

	if t.Units != nil {
		parts = append(parts, "("+*t.Units+")")
	}

	if t.Notes != nil {
		parts = append(parts, "["+*t.Notes+"]")
	}

	return strings.Join(parts, " ")
}

// ParseFileHeaderTokens parses a value and units clause from a header item
// value. It reports false when s has no parenthesized suffix, including the
// empty-parens case: the whole value is then plain text.
func ParseFileHeaderTokens(s string) (FileHeaderTokens, bool) {
	groups, ok := parseTokens(s, fileHeaderPattern)
	if !ok {
		return FileHeaderTokens{}, false
	}

	stripTokens(groups)

	return FileHeaderTokens{
		Value: deref(groups["value"]),
		Units: groups["units"],
	}, true
}

// ParseColumnHeaderTokens parses name, units, and notes from a column label.
// It reports false when no name component can be matched, e.g. for a label
// consisting only of a parenthesized or bracketed clause.
func ParseColumnHeaderTokens(s string) (ColumnHeaderTokens, bool) {
	groups, ok := parseTokens(s, columnHeaderPattern)
	if !ok {
		return ColumnHeaderTokens{}, false
	}

	stripTokens(groups)

	return ColumnHeaderTokens{
		Name:  deref(groups["name"]),
		Units: groups["units"],
		Notes: groups["notes"],
	}, true
}

// parseTokens applies a named-group pattern to s and returns the captured
// groups. Optional groups that did not participate in the match map to nil.
func parseTokens(s string, pattern *regexp.Regexp) (map[string]*string, bool) {
	match := pattern.FindStringSubmatchIndex(s)
	if match == nil {
		return nil, false
	}

	groups := make(map[string]*string)

	for i, name := range pattern.SubexpNames() {
		if name == "" {
			continue
		}

		if match[2*i] < 0 {
			groups[name] = nil

			continue
		}

		captured := s[match[2*i]:match[2*i+1]]
		groups[name] = &captured
	}

	return groups, true
}

// stripTokens trims surrounding whitespace from every present group in
// place. Absent groups pass through unchanged.
func stripTokens(groups map[string]*string) {
	for name, value := range groups {
		if value == nil {
			continue
		}

		stripped := strings.TrimSpace(*value)
		groups[name] = &stripped
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
