package xcsv

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/glaciome/xcsv/table"
)

// envelope is the JSON form of a whole document.
type envelope struct {
	Metadata *Metadata    `json:"metadata"`
	Data     *table.Table `json:"data"`
}

// ReadEnvelope parses a document from its JSON envelope form,
//
//	{"metadata": {"header": ..., "column_headers": ...}, "data": ...}
//
// where data carries the table engine's columns-oriented layout. Metadata
// round-trips exactly on this path: values are taken as encoded, with no
// token re-parsing.
func ReadEnvelope(r io.Reader) (*Document, error) {
	var env envelope

	err := json.NewDecoder(r).Decode(&env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return NewDocument(env.Metadata, env.Data), nil
}

// WriteEnvelope emits the document's JSON envelope form.
func WriteEnvelope(w io.Writer, doc *Document) error {
	encoded, err := json.Marshal(envelope{Metadata: doc.Metadata, Data: doc.Data})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	_, err = w.Write(encoded)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
