package xcsv

import (
	"fmt"
	"strconv"

	"github.com/glaciome/xcsv/table"
)

// Document is a parsed XCSV artifact: the metadata from the extended header
// and column-header row, plus the tabular data.
//
// A [Reader] produces a fresh Document on every read; callers may also
// construct one directly. After a read the metadata is plain data -- nothing
// mutates it except explicit calls such as [Document.RenameColumnsAsNames].
type Document struct {
	Metadata *Metadata
	Data     *table.Table
}

// NewDocument creates a Document from its parts. Either part may be nil;
// accessors that need the missing part fail with [ErrUninitializedMetadata].
func NewDocument(metadata *Metadata, data *table.Table) *Document {
	return &Document{Metadata: metadata, Data: data}
}

// CastValue casts a string to the most appropriate primitive numeric type:
// int64, else float64, else the string itself.
func CastValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

// MetadataItem returns the raw value stored under key in the given section:
// a [HeaderValue] for [SectionHeader], a [ColumnHeaderTokens] for
// [SectionColumnHeaders]. The second result reports whether the key exists.
func (d *Document) MetadataItem(key, section string) (any, bool, error) {
	switch section {
	case SectionHeader:
		header, err := d.headerSection()
		if err != nil {
			return nil, false, err
		}

		value, ok := header.Get(key)
		if !ok {
			return nil, false, nil
		}

		return value, true, nil

	case SectionColumnHeaders:
		columnHeaders, err := d.columnHeadersSection()
		if err != nil {
			return nil, false, err
		}

		tokens, ok := columnHeaders.Get(key)
		if !ok {
			return nil, false, nil
		}

		return tokens, true, nil
	}

	return nil, false, fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

// MetadataItemString returns the key's value rendered as its original file
// text: pairs and column tokens are reconstructed, lists are rejoined with
// newlines. Rejoining fails with [ErrAmbiguousListItem] when a list element
// is a pair.
func (d *Document) MetadataItemString(key, section string) (string, bool, error) {
	value, ok, err := d.MetadataItem(key, section)
	if err != nil || !ok {
		return "", ok, err
	}

	switch v := value.(type) {
	case Scalar:
		return string(v), true, nil
	case Pair:
		return v.String(), true, nil
	case List:
		s, err := v.Join()
		if err != nil {
			return "", false, err
		}

		return s, true, nil
	case ColumnHeaderTokens:
		return v.String(), true, nil
	}

	return "", false, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}

// MetadataItemValue returns the key's primary sub-field: the value component
// for header pairs, the name component for column tokens, the text itself
// for scalars, and the newline-joined text for lists. With cast, the result
// is coerced via [CastValue]; multi-line text naturally stays a string.
func (d *Document) MetadataItemValue(key, section string, cast bool) (any, bool, error) {
	value, ok, err := d.MetadataItem(key, section)
	if err != nil || !ok {
		return nil, ok, err
	}

	var primary string

	switch v := value.(type) {
	case Scalar:
		primary = string(v)
	case Pair:
		primary = v.Value
	case List:
		primary, err = v.Join()
		if err != nil {
			return nil, false, err
		}
	case ColumnHeaderTokens:
		primary = v.Name
	default:
		return nil, false, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}

	if cast {
		return CastValue(primary), true, nil
	}

	return primary, true, nil
}

// ColumnHeaderNameMap returns a mapping from verbatim column labels to their
// parsed names.
func (d *Document) ColumnHeaderNameMap() (map[string]string, error) {
	columnHeaders, err := d.columnHeadersSection()
	if err != nil {
		return nil, err
	}

	nameMap := make(map[string]string, columnHeaders.Len())

	for _, label := range columnHeaders.Labels() {
		tokens, _ := columnHeaders.Get(label)
		nameMap[label] = tokens.Name
	}

	return nameMap, nil
}

// ColumnHeaderLabelMap returns the inverse of [Document.ColumnHeaderNameMap]:
// parsed names back to verbatim labels.
func (d *Document) ColumnHeaderLabelMap() (map[string]string, error) {
	columnHeaders, err := d.columnHeadersSection()
	if err != nil {
		return nil, err
	}

	labelMap := make(map[string]string, columnHeaders.Len())

	for _, label := range columnHeaders.Labels() {
		tokens, _ := columnHeaders.Get(label)
		labelMap[tokens.Name] = label
	}

	return labelMap, nil
}

// RenameColumnsAsNames renames the data columns from their verbatim labels
// to their parsed names. Renaming with an empty map is a no-op.
func (d *Document) RenameColumnsAsNames() error {
	nameMap, err := d.ColumnHeaderNameMap()
	if err != nil {
		return err
	}

	d.Data.Rename(nameMap)

	return nil
}

// RenameColumnsAsLabels renames the data columns from their parsed names
// back to their verbatim labels.
func (d *Document) RenameColumnsAsLabels() error {
	labelMap, err := d.ColumnHeaderLabelMap()
	if err != nil {
		return err
	}

	d.Data.Rename(labelMap)

	return nil
}

// NotesForColumn cross-references a column's notes marker to the header
// section: a column with notes "a" resolves to the stringified value of the
// header key "[a]". The second result is false when the column is unknown,
// has no notes, or the bracketed key is absent from the header.
func (d *Document) NotesForColumn(label string) (string, bool, error) {
	value, ok, err := d.MetadataItem(label, SectionColumnHeaders)
	if err != nil || !ok {
		return "", false, err
	}

	tokens := value.(ColumnHeaderTokens)
	if tokens.Notes == nil {
		return "", false, nil
	}

	return d.MetadataItemString("["+*tokens.Notes+"]", SectionHeader)
}

func (d *Document) headerSection() (*HeaderMap, error) {
	if d.Metadata == nil || d.Metadata.Header == nil {
		return nil, fmt.Errorf("%w: no header section", ErrUninitializedMetadata)
	}

	return d.Metadata.Header, nil
}

func (d *Document) columnHeadersSection() (*ColumnHeaderMap, error) {
	if d.Metadata == nil || d.Metadata.ColumnHeaders == nil {
		return nil, fmt.Errorf("%w: no column_headers section", ErrUninitializedMetadata)
	}

	return d.Metadata.ColumnHeaders, nil
}
