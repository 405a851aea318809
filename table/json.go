package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidJSON indicates table JSON that does not follow the
// columns-oriented layout.
var ErrInvalidJSON = errors.New("invalid table json")

// MarshalJSON renders the table in columns orientation: an object mapping
// each column label to an object of row-index keys ("0", "1", ...) and cell
// values. Column order and row order are preserved.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, label := range t.labels {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteString(":{")

		for j := range t.rows {
			if j > 0 {
				buf.WriteByte(',')
			}

			buf.WriteByte('"')
			buf.WriteString(strconv.Itoa(j))
			buf.WriteString(`":`)

			cell, err := t.rows[j][i].MarshalJSON()
			if err != nil {
				return nil, err
			}

			buf.Write(cell)
		}

		buf.WriteByte('}')
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON renders the cell as a JSON scalar: null for the null cell, a
// number for integer and float cells, a string for text cells.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	}

	return []byte("null"), nil
}

// UnmarshalJSON rebuilds a table from its columns-oriented JSON form,
// preserving column order. Row-index keys may appear in any order; gaps
// become null cells.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	err := expectDelim(dec, '{')
	if err != nil {
		return err
	}

	var (
		labels  []string
		columns []map[int]Value
		numRows int
	)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: column key is not a string", ErrInvalidJSON)
		}

		column, err := decodeColumn(dec)
		if err != nil {
			return err
		}

		labels = append(labels, label)
		columns = append(columns, column)

		for idx := range column {
			if idx+1 > numRows {
				numRows = idx + 1
			}
		}
	}

	err = expectDelim(dec, '}')
	if err != nil {
		return err
	}

	rows := make([][]Value, numRows)
	for i := range rows {
		row := make([]Value, len(labels))
		for j, column := range columns {
			row[j] = column[i] // zero Value is the null cell
		}

		rows[i] = row
	}

	t.labels = labels
	t.rows = rows

	return nil
}

// decodeColumn parses one {"<row index>": <cell>, ...} object.
func decodeColumn(dec *json.Decoder) (map[int]Value, error) {
	err := expectDelim(dec, '{')
	if err != nil {
		return nil, err
	}

	column := make(map[int]Value)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: row key is not a string", ErrInvalidJSON)
		}

		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: row key %q is not an index", ErrInvalidJSON, key)
		}

		cell, err := decodeCell(dec)
		if err != nil {
			return nil, err
		}

		column[idx] = cell
	}

	err = expectDelim(dec, '}')
	if err != nil {
		return nil, err
	}

	return column, nil
}

// decodeCell parses one JSON scalar into a typed cell. Integer-looking
// numbers become integer cells, other numbers float cells.
func decodeCell(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}

	switch val := tok.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(val), nil
	case bool:
		return String(strconv.FormatBool(val)), nil
	case json.Number:
		if i, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
			return Int(i), nil
		}

		f, err := val.Float64()
		if err != nil {
			return Null(), fmt.Errorf("%w: bad number %q", ErrInvalidJSON, val.String())
		}

		return Float(f), nil
	}

	return Null(), fmt.Errorf("%w: cell is not a scalar", ErrInvalidJSON)
}

// expectDelim consumes one token and requires it to be the given delimiter.
func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrInvalidJSON, want, tok)
	}

	return nil
}
