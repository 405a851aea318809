package xcsv

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/glaciome/xcsv/table"
)

// missingValueKey is the header item naming the table's missing-value
// sentinel.
const missingValueKey = "missing_value"

// utf8BOM is the byte-order mark as it appears at the start of UTF-8 text.
const utf8BOM = "\uFEFF"

// maxHeaderLine bounds the scanner's token size during the header pass.
const maxHeaderLine = 1 << 20

// Reader parses an XCSV document from a seekable text stream.
//
// The stream must support rewinding: the header scan and the data scan each
// start from offset zero. The Reader assumes UTF-8 text; [ReadFile] handles
// transcoding from other encodings. Readers are not safe for concurrent use,
// and the source must not be read by anything else during [Reader.Read].
type Reader struct {
	src           io.ReadSeeker
	header        *HeaderMap
	columnHeaders *ColumnHeaderMap
	data          *table.Table
	opts          options
}

// NewReader creates a [Reader] over src with read defaults: comment "#",
// delimiter ":", metadata parsing enabled.
func NewReader(src io.ReadSeeker, opts ...Option) *Reader {
	return &Reader{
		src:  src,
		opts: newReadOptions(opts),
	}
}

// Read parses the whole document: the extended header, then the table, then
// post-processing driven by the header (missing-value masking, applied only
// when metadata parsing is enabled).
func (r *Reader) Read() (*Document, error) {
	_, err := r.ReadHeader()
	if err != nil {
		return nil, err
	}

	_, err = r.ReadData()
	if err != nil {
		return nil, err
	}

	if r.opts.parseMetadata {
		r.maskMissingValues()
	}

	metadata := &Metadata{Header: r.header, ColumnHeaders: r.columnHeaders}

	return NewDocument(metadata, r.data), nil
}

// ReadHeader rewinds the stream and parses the extended header section,
// stopping at the first non-comment line. A byte-order mark on the first
// line is skipped and never re-emitted on write.
func (r *Reader) ReadHeader() (*HeaderMap, error) {
	_, err := r.src.Seek(0, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	acc := newHeaderAccumulator(r.opts.comment, r.opts.delimiter, r.opts.parseMetadata)

	scanner := bufio.NewScanner(r.src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxHeaderLine)

	first := true

	for scanner.Scan() {
		line := scanner.Text()

		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}

		if !strings.HasPrefix(line, r.opts.comment) {
			break
		}

		err := acc.consume(line)
		if err != nil {
			return nil, err
		}
	}

	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	r.header = acc.header

	return r.header, nil
}

// ReadData rewinds the stream and parses the tabular body, skipping the
// comment-prefixed header lines on the way through, then stores the parsed
// column-header metadata.
func (r *Reader) ReadData() (*table.Table, error) {
	_, err := r.src.Seek(0, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	tr := table.NewReader(r.src)
	if r.opts.comment != "" {
		tr.Comment = r.opts.comment[0]
	}

	data, err := tr.ReadTable()
	if err != nil {
		return nil, err
	}

	r.data = data
	r.columnHeaders = ParseColumnHeaders(data.Columns(), r.opts.parseMetadata)

	return r.data, nil
}

// maskMissingValues replaces cells equal to the missing_value sentinel with
// the null cell, across all columns. The raw sentinel is numerically cast
// first; a sentinel that is not a plain scalar (a value/units pair, or a
// list) disables masking entirely.
func (r *Reader) maskMissingValues() {
	raw, ok := r.header.Get(missingValueKey)
	if !ok {
		return
	}

	scalar, ok := raw.(Scalar)
	if !ok {
		return
	}

	switch sentinel := CastValue(string(scalar)).(type) {
	case int64:
		r.data.Mask(func(v table.Value) bool {
			n, ok := v.Numeric()

			return ok && n == float64(sentinel)
		})

	case float64:
		r.data.Mask(func(v table.Value) bool {
			n, ok := v.Numeric()

			return ok && n == sentinel
		})

	case string:
		r.data.Mask(func(v table.Value) bool {
			return v.Kind() == table.KindString && v.StringValue() == sentinel
		})
	}
}
