package xcsv

import (
	"fmt"
	"io"
	"strings"

	"github.com/glaciome/xcsv/table"
)

// Writer reconstructs an XCSV document onto a text stream: the extended
// header lines first, then the tabular body.
//
// Writing is the exact inverse of reading. In particular, a continuation
// line is emitted in escaped form if and only if its rendered text contains
// the delimiter's significant (non-whitespace) characters -- the same test
// the reader uses to recognize the forms -- so that write-then-read is
// idempotent.
type Writer struct {
	dst  io.Writer
	opts options
}

// NewWriter creates a [Writer] on dst with write defaults: comment "# " and
// delimiter ": ", right-padded for readability. The padding is stripped on
// re-read.
func NewWriter(dst io.Writer, opts ...Option) *Writer {
	return &Writer{
		dst:  dst,
		opts: newWriteOptions(opts),
	}
}

// Write emits the whole document.
func (w *Writer) Write(doc *Document) error {
	if doc.Metadata != nil && doc.Metadata.Header != nil {
		err := w.WriteHeader(doc.Metadata.Header)
		if err != nil {
			return err
		}
	}

	if doc.Data != nil {
		err := w.WriteData(doc.Data)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteHeader emits the comment-prefixed header lines in key insertion
// order.
func (w *Writer) WriteHeader(header *HeaderMap) error {
	for _, line := range w.headerLines(header) {
		_, err := io.WriteString(w.dst, line+"\n")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}

	return nil
}

// WriteData emits the tabular body.
func (w *Writer) WriteData(data *table.Table) error {
	tw := table.NewWriter(w.dst)

	err := tw.WriteTable(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

// headerLines reconstructs the raw header lines from the parsed header.
func (w *Writer) headerLines(header *HeaderMap) []string {
	var lines []string

	for _, key := range header.Keys() {
		value, _ := header.Get(key)

		list, ok := value.(List)
		if !ok {
			lines = append(lines, w.formatHeaderLine(key, w.opts.delimiter, headerValueString(value)))

			continue
		}

		// A list is a keyed line plus continuation lines.
		for i, element := range list {
			text := headerValueString(element)

			if i == 0 {
				lines = append(lines, w.formatHeaderLine(key, w.opts.delimiter, text))

				continue
			}

			// Escaped form only when the text would otherwise re-split on
			// the delimiter.
			delimiter := ""
			if strings.Contains(text, strings.TrimSpace(w.opts.delimiter)) {
				delimiter = w.opts.delimiter
			}

			lines = append(lines, w.formatHeaderLine("", delimiter, text))
		}
	}

	return lines
}

// formatHeaderLine assembles comment + key + delimiter + value. Continuation
// lines pass an empty key, and simple-form ones an empty delimiter too.
func (w *Writer) formatHeaderLine(key, delimiter, value string) string {
	return w.opts.comment + key + delimiter + value
}

// headerValueString renders a single header value as its original file text.
// Pair elements inside lists render reconstructed; rejecting them is the
// reader's job, the writer stays faithful to whatever it is handed.
func headerValueString(value HeaderValue) string {
	switch v := value.(type) {
	case Scalar:
		return string(v)
	case Pair:
		return v.String()
	case List:
		// Nested lists do not occur; render elements joined for robustness.
		parts := make([]string, len(v))
		for i, element := range v {
			parts[i] = headerValueString(element)
		}

		return strings.Join(parts, "\n")
	}

	return ""
}
