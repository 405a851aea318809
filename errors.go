package xcsv

import "errors"

// Sentinel errors returned by the reader, writer, and metadata accessors.
var (
	// ErrMalformedHeaderStart indicates a header whose first line carries no
	// key/value delimiter, so there is no key to attach it to.
	ErrMalformedHeaderStart = errors.New("header must begin with a keyed line")

	// ErrAmbiguousListItem indicates a continuation line that tokenized as a
	// value/units pair inside a list-valued header item. List items must stay
	// plain text so they can be rejoined on write.
	ErrAmbiguousListItem = errors.New("value/units pair in list header item")

	// ErrUnknownSection indicates a metadata section other than
	// [SectionHeader] or [SectionColumnHeaders].
	ErrUnknownSection = errors.New("unknown metadata section")

	// ErrUninitializedMetadata indicates a metadata accessor called on a
	// document whose metadata has not been populated.
	ErrUninitializedMetadata = errors.New("metadata is not initialized")

	// ErrUnsupportedValue indicates a header value of a type the accessors
	// cannot render, such as a nil value stored directly via Set.
	ErrUnsupportedValue = errors.New("unsupported header value")

	// ErrUnknownEncoding indicates an unrecognized character encoding name.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrReadInput indicates an I/O failure while reading input.
	ErrReadInput = errors.New("read input")

	// ErrWriteOutput indicates an I/O failure while writing output.
	ErrWriteOutput = errors.New("write output")
)
