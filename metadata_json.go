package xcsv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidMetadataJSON indicates envelope metadata that does not follow
// the expected layout.
var ErrInvalidMetadataJSON = errors.New("invalid metadata json")

// pairJSON is the wire form of a [Pair]. Units is a pointer so that a null
// units field decodes to a plain scalar rather than a pair.
type pairJSON struct {
	Value string  `json:"value"`
	Units *string `json:"units"`
}

// MarshalJSON renders the map as a JSON object with keys in insertion order.
// Scalars render as strings, pairs as {"value": ..., "units": ...} objects,
// and lists as arrays.
func (m *HeaderMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		value, err := marshalHeaderValue(e.value)
		if err != nil {
			return nil, err
		}

		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func marshalHeaderValue(v HeaderValue) ([]byte, error) {
	switch v := v.(type) {
	case Scalar:
		return json.Marshal(string(v))

	case Pair:
		units := v.Units

		return json.Marshal(pairJSON{Value: v.Value, Units: &units})

	case List:
		var buf bytes.Buffer

		buf.WriteByte('[')

		for i, element := range v {
			if i > 0 {
				buf.WriteByte(',')
			}

			encoded, err := marshalHeaderValue(element)
			if err != nil {
				return nil, err
			}

			buf.Write(encoded)
		}

		buf.WriteByte(']')

		return buf.Bytes(), nil
	}

	return nil, fmt.Errorf("%w: unsupported header value %T", ErrInvalidMetadataJSON, v)
}

// UnmarshalJSON rebuilds the map from a JSON object, preserving the key
// order of the document. No token re-parsing happens on this path: pairs and
// scalars are taken as they appear.
func (m *HeaderMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	err := expectObjectStart(dec)
	if err != nil {
		return err
	}

	m.entries = nil
	m.index = map[string]int{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: header key is not a string", ErrInvalidMetadataJSON)
		}

		var raw json.RawMessage

		err = dec.Decode(&raw)
		if err != nil {
			return err
		}

		value, err := decodeHeaderValue(raw)
		if err != nil {
			return err
		}

		m.Set(key, value)
	}

	_, err = dec.Token() // closing brace

	return err
}

func decodeHeaderValue(raw json.RawMessage) (HeaderValue, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty header value", ErrInvalidMetadataJSON)
	}

	switch trimmed[0] {
	case '"':
		var s string

		err := json.Unmarshal(trimmed, &s)
		if err != nil {
			return nil, err
		}

		return Scalar(s), nil

	case '{':
		var p pairJSON

		err := json.Unmarshal(trimmed, &p)
		if err != nil {
			return nil, err
		}

		if p.Units == nil {
			return Scalar(p.Value), nil
		}

		return Pair{Value: p.Value, Units: *p.Units}, nil

	case '[':
		var elements []json.RawMessage

		err := json.Unmarshal(trimmed, &elements)
		if err != nil {
			return nil, err
		}

		list := make(List, len(elements))

		for i, element := range elements {
			value, err := decodeHeaderValue(element)
			if err != nil {
				return nil, err
			}

			list[i] = value
		}

		return list, nil
	}

	// Foreign producers may emit bare numbers or booleans; keep their
	// literal text.
	var n json.Number

	err := json.Unmarshal(trimmed, &n)
	if err == nil {
		return Scalar(n.String()), nil
	}

	return Scalar(string(trimmed)), nil
}

// MarshalJSON renders the map as a JSON object with labels in insertion
// order. Absent units and notes render as null.
func (m *ColumnHeaderMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.label)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		tokens, err := json.Marshal(e.tokens)
		if err != nil {
			return nil, err
		}

		buf.Write(tokens)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the map from a JSON object, preserving label order.
func (m *ColumnHeaderMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	err := expectObjectStart(dec)
	if err != nil {
		return err
	}

	m.entries = nil
	m.index = map[string]int{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: column label is not a string", ErrInvalidMetadataJSON)
		}

		var tokens ColumnHeaderTokens

		err = dec.Decode(&tokens)
		if err != nil {
			return err
		}

		m.Set(label, tokens)
	}

	_, err = dec.Token() // closing brace

	return err
}

func expectObjectStart(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("%w: expected an object, got %v", ErrInvalidMetadataJSON, tok)
	}

	return nil
}
