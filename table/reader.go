package table

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrBareQuote indicates a quote character inside an unquoted field.
	ErrBareQuote = errors.New("bare quote in non-quoted field")
	// ErrUnterminatedQuote indicates a quoted field left open at end of input.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
	// ErrFieldCount indicates a record with an unexpected number of fields.
	ErrFieldCount = errors.New("wrong number of fields")
	// ErrEmptyInput indicates input with no column-header record.
	ErrEmptyInput = errors.New("no records in input")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseError reports the location of a malformed record.
type ParseError struct {
	Err  error
	Line int
}

// Error formats the parse error with its line number.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error for use with [errors.Is].
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader parses delimited records from a stream.
//
// Lines beginning with Comment are skipped when they occur between records,
// which lets a file carry a comment-prefixed preamble above the table. A
// UTF-8 byte-order mark at the very start of the stream is discarded.
type Reader struct {
	src *bufio.Reader

	// Comma is the field delimiter. Default ','.
	Comma byte
	// Quote is the quote character. Default '"'.
	Quote byte
	// Comment marks skippable lines between records. Zero disables skipping.
	Comment byte
	// FieldsPerRecord, when positive, is the required record width.
	FieldsPerRecord int

	line    int
	started bool
}

// NewReader creates a [Reader] over src with default delimiters.
func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:   bufio.NewReader(src),
		Comma: ',',
		Quote: '"',
		line:  0,
	}
}

// Read parses the next record, skipping any comment lines that precede it.
// It returns [io.EOF] when no records remain.
func (r *Reader) Read() ([]string, error) {
	err := r.skipPreamble()
	if err != nil {
		return nil, err
	}

	return r.readRecord()
}

// ReadAll collects the remaining records until [io.EOF].
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}

		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}
}

// ReadTable reads the column-header record and all data records into a
// [*Table], parsing each field into a typed cell via [Parse].
func (r *Reader) ReadTable() (*Table, error) {
	labels, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}

	if err != nil {
		return nil, err
	}

	if r.FieldsPerRecord <= 0 {
		r.FieldsPerRecord = len(labels)
	}

	t := New(labels...)

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}

		if err != nil {
			return nil, err
		}

		row := make([]Value, len(record))
		for i, field := range record {
			row[i] = Parse(field)
		}

		err = t.Append(row...)
		if err != nil {
			return nil, &ParseError{Line: r.line, Err: err}
		}
	}
}

// skipPreamble discards a leading byte-order mark and any comment lines
// sitting before the next record.
func (r *Reader) skipPreamble() error {
	if !r.started {
		r.started = true

		head, err := r.src.Peek(len(utf8BOM))
		if err == nil && bytes.Equal(head, utf8BOM) {
			_, _ = r.src.Discard(len(utf8BOM))
		}
	}

	for {
		head, err := r.src.Peek(1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}

			return err
		}

		if r.Comment == 0 || head[0] != r.Comment {
			return nil
		}

		_, err = r.src.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		r.line++
	}
}

// readRecord parses one record, honoring quoted fields that may embed the
// delimiter, quotes (doubled), and newlines.
func (r *Reader) readRecord() ([]string, error) {
	r.line++

	var (
		fields   []string
		field    []byte
		inQuotes bool
		quoted   bool
	)

	endRecord := func() ([]string, error) {
		fields = append(fields, string(field))
		if r.FieldsPerRecord > 0 && len(fields) != r.FieldsPerRecord {
			return nil, &ParseError{Line: r.line, Err: ErrFieldCount}
		}

		return fields, nil
	}

	for {
		b, err := r.src.ReadByte()
		if errors.Is(err, io.EOF) {
			if inQuotes {
				return nil, &ParseError{Line: r.line, Err: ErrUnterminatedQuote}
			}
			// Input ended without a trailing newline.
			return endRecord()
		}

		if err != nil {
			return nil, err
		}

		if inQuotes {
			switch b {
			case r.Quote:
				next, err := r.src.Peek(1)
				if err == nil && next[0] == r.Quote {
					_, _ = r.src.Discard(1)

					field = append(field, r.Quote)

					continue
				}

				inQuotes = false

			case '\n':
				field = append(field, b)
				r.line++

			default:
				field = append(field, b)
			}

			continue
		}

		switch b {
		case r.Comma:
			fields = append(fields, string(field))
			field = field[:0]
			quoted = false

		case '\r':
			next, err := r.src.Peek(1)
			if err == nil && next[0] == '\n' {
				_, _ = r.src.Discard(1)
			}

			return endRecord()

		case '\n':
			return endRecord()

		case r.Quote:
			if len(field) != 0 || quoted {
				return nil, &ParseError{Line: r.line, Err: ErrBareQuote}
			}

			inQuotes = true
			quoted = true

		default:
			// Bare text after a closing quote, e.g. `"a"b`.
			if quoted {
				return nil, &ParseError{Line: r.line, Err: ErrBareQuote}
			}

			field = append(field, b)
		}
	}
}
