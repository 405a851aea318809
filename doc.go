// Package xcsv reads and writes extended CSV files, a CSV dialect that
// carries metadata in commented header lines before the tabular data.
//
// An XCSV file opens with comment-prefixed key/value header lines, follows
// them with a row of column labels, and ends with delimited data rows:
//
//	# id: 1
//	# title: The title
//	# summary: This is a
//	# multi-line summary
//	# authors: A B Smith (ORCID: 0-123-235-8)
//	# latitude (N): 73.05
//	# longitude (E): -24.22
//	# elevation (m a.s.l.): 2132
//	# [a]: 2012 not a complete year
//	time (year) [a],depth (m)
//	2012,0.575
//	2011,1.125
//	2010,2.225
//
// Header values may continue over multiple lines, may carry a units clause
// in parentheses, and column labels may carry units and notes clauses.
// Use [ReadFile] or a [Reader] to parse a document into a [Document], which
// holds the parsed [Metadata] and the typed data as a [table.Table]:
//
//	doc, err := xcsv.ReadFile("data.csv")
//	lat, ok, err := doc.MetadataItemValue("latitude", xcsv.SectionHeader, true)
//
// Use [WriteFile] or a [Writer] to reconstruct the textual form, and
// [ReadEnvelope] and [WriteEnvelope] for the equivalent JSON envelope.
// Reading and writing options such as the comment prefix, the header
// delimiter, and the file encoding are set with [Option] values like
// [WithComment] and [WithDelimiter], or through [Config] with CLI flag
// integration via [github.com/spf13/pflag] and shell completion support
// via [github.com/spf13/cobra].
package xcsv
