// Package table implements a small delimited-table engine: an in-memory
// [Table] of ordered, named columns and typed cells, with a CSV [Reader] and
// [Writer] and a columns-oriented JSON codec.
//
// Cells are [Value] variants: integer, float, text, or null. [Parse] infers
// the narrowest type for each raw field, and [Value.Format] renders it back
// so that a parsed file rewrites byte-identically as long as no column mixes
// integer and float formatting.
//
// The [Reader] skips lines that begin with a configurable comment byte when
// they occur between records, allowing a table to be read out of a file that
// carries a comment-prefixed preamble. The JSON codec lays the table out as
//
//	{"col A": {"0": 1, "1": 2}, "col B": {"0": 0.5, "1": null}}
//
// preserving column order on both marshal and unmarshal.
package table
