package table

import (
	"bufio"
	"io"
	"strings"
)

// Writer emits delimited records to a stream.
type Writer struct {
	dst *bufio.Writer

	// Comma is the field delimiter. Default ','.
	Comma byte
	// Quote is the quote character. Default '"'.
	Quote byte
	// UseCRLF terminates records with \r\n instead of \n.
	UseCRLF bool
}

// NewWriter creates a [Writer] on dst with default delimiters.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{
		dst:   bufio.NewWriter(dst),
		Comma: ',',
		Quote: '"',
	}
}

// Write emits a single record followed by the record terminator. Fields
// containing the delimiter, the quote character, or a line break are quoted,
// with embedded quotes doubled.
func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			err := w.dst.WriteByte(w.Comma)
			if err != nil {
				return err
			}
		}

		err := w.writeField(field)
		if err != nil {
			return err
		}
	}

	if w.UseCRLF {
		_, err := w.dst.WriteString("\r\n")

		return err
	}

	return w.dst.WriteByte('\n')
}

// WriteTable emits the column-header record followed by every data row, then
// flushes the underlying buffer.
func (w *Writer) WriteTable(t *Table) error {
	err := w.Write(t.labels)
	if err != nil {
		return err
	}

	record := make([]string, t.NumCols())

	for _, row := range t.rows {
		for i, v := range row {
			record[i] = v.Format()
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}

	return w.Flush()
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.dst.Flush()
}

func (w *Writer) writeField(field string) error {
	if !w.fieldNeedsQuote(field) {
		_, err := w.dst.WriteString(field)

		return err
	}

	err := w.dst.WriteByte(w.Quote)
	if err != nil {
		return err
	}

	quote := string(w.Quote)

	_, err = w.dst.WriteString(strings.ReplaceAll(field, quote, quote+quote))
	if err != nil {
		return err
	}

	return w.dst.WriteByte(w.Quote)
}

func (w *Writer) fieldNeedsQuote(field string) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case w.Comma, w.Quote, '\n', '\r':
			return true
		}
	}

	return false
}
