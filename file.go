package xcsv

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile reads an XCSV document from a file, decoding it from the encoding
// named by [WithEncoding] (default UTF-8). The file is opened, read, and
// closed on every exit path.
func ReadFile(path string, opts ...Option) (doc *Document, err error) {
	o := newReadOptions(opts)

	err = withFile(path, os.O_RDONLY, 0, func(f *os.File) error {
		text, err := decodeAll(f, o.encoding)
		if err != nil {
			return err
		}

		doc, err = NewReader(bytes.NewReader(text), opts...).Read()

		return err
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// WriteFile writes an XCSV document to a file, encoding it into the encoding
// named by [WithEncoding] (default UTF-8). A byte-order mark is never
// written for UTF-8 output.
func WriteFile(path string, doc *Document, opts ...Option) error {
	o := newWriteOptions(opts)

	var buf bytes.Buffer

	err := NewWriter(&buf, opts...).Write(doc)
	if err != nil {
		return err
	}

	encoded, err := encodeAll(buf.Bytes(), o.encoding)
	if err != nil {
		return err
	}

	return withFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644, func(f *os.File) error {
		_, err := f.Write(encoded)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	})
}

// ReadFileJSON reads a document from its JSON envelope form. JSON is always
// UTF-8.
func ReadFileJSON(path string) (doc *Document, err error) {
	err = withFile(path, os.O_RDONLY, 0, func(f *os.File) error {
		doc, err = ReadEnvelope(f)

		return err
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// WriteFileJSON writes a document in its JSON envelope form.
func WriteFileJSON(path string, doc *Document) error {
	return withFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644, func(f *os.File) error {
		return WriteEnvelope(f, doc)
	})
}

// withFile opens path, hands the file to fn, and guarantees the file is
// closed on every exit path. A close failure surfaces only when fn itself
// succeeded.
func withFile(path string, flag int, perm os.FileMode, fn func(*os.File) error) error {
	f, err := os.OpenFile(path, flag, perm) //nolint:gosec // Paths come from the caller.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	err = fn(f)

	closeErr := f.Close()
	if err != nil {
		return err
	}

	if closeErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, closeErr)
	}

	return nil
}

// decodeAll reads everything from r, transcoding to UTF-8 when name is a
// non-UTF-8 IANA encoding. Any leading byte-order mark takes precedence over
// the named encoding and is removed.
func decodeAll(r io.Reader, name string) ([]byte, error) {
	if isUTF8(name) {
		// The reader strips a UTF-8 BOM itself; no transform needed.
		text, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		return text, nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}

	decoder := unicode.BOMOverride(enc.NewDecoder())

	text, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return text, nil
}

// encodeAll transcodes UTF-8 text into the named encoding, or returns it
// unchanged for UTF-8.
func encodeAll(text []byte, name string) ([]byte, error) {
	if isUTF8(name) {
		return text, nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}

	encoded, _, err := transform.Bytes(enc.NewEncoder(), text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return encoded, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	return enc, nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "utf-8", "utf8":
		return true
	}

	return false
}
