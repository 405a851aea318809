package xcsv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaciome/xcsv"
)

func TestWriteEnvelope(t *testing.T) {
	t.Parallel()

	input := "# id: 1\n# elevation: 2132 (m a.s.l.)\n# summary: A\n# B\ntime (year),depth\n2012,0.575\n2011,\n"

	doc, err := xcsv.NewReader(strings.NewReader(input)).Read()
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, xcsv.WriteEnvelope(&buf, doc))

	want := `{"metadata":{` +
		`"header":{` +
		`"id":"1",` +
		`"elevation":{"value":"2132","units":"m a.s.l."},` +
		`"summary":["A","B"]},` +
		`"column_headers":{` +
		`"time (year)":{"name":"time","units":"year","notes":null},` +
		`"depth":{"name":"depth","units":null,"notes":null}}},` +
		`"data":{` +
		`"time (year)":{"0":2012,"1":2011},` +
		`"depth":{"0":0.575,"1":null}}}`

	assert.JSONEq(t, want, buf.String())
	// Key order is part of the format, so compare the raw text too.
	assert.Equal(t, want, buf.String())
}

func TestEnvelopeRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := xcsv.NewReader(strings.NewReader(exampleText)).Read()
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, xcsv.WriteEnvelope(&buf, doc))

	decoded, err := xcsv.ReadEnvelope(&buf)
	require.NoError(t, err)

	assert.Equal(t, doc.Metadata.Header.Keys(), decoded.Metadata.Header.Keys())

	for _, key := range doc.Metadata.Header.Keys() {
		want, _ := doc.Metadata.Header.Get(key)
		got, ok := decoded.Metadata.Header.Get(key)
		require.True(t, ok)
		assert.Equal(t, want, got, "header key %q", key)
	}

	assert.Equal(t, doc.Metadata.ColumnHeaders.Labels(), decoded.Metadata.ColumnHeaders.Labels())
	assert.True(t, doc.Data.Equal(decoded.Data))
}

func TestEnvelopeThenTextMatchesDirectWrite(t *testing.T) {
	t.Parallel()

	doc, err := xcsv.NewReader(strings.NewReader(exampleText)).Read()
	require.NoError(t, err)

	var envelope bytes.Buffer

	require.NoError(t, xcsv.WriteEnvelope(&envelope, doc))

	decoded, err := xcsv.ReadEnvelope(&envelope)
	require.NoError(t, err)

	var direct, viaEnvelope bytes.Buffer

	require.NoError(t, xcsv.NewWriter(&direct).Write(doc))
	require.NoError(t, xcsv.NewWriter(&viaEnvelope).Write(decoded))

	assert.Equal(t, exampleText, direct.String())
	assert.Equal(t, direct.String(), viaEnvelope.String())
}

func TestReadEnvelopeInvalid(t *testing.T) {
	t.Parallel()

	_, err := xcsv.ReadEnvelope(strings.NewReader("not json"))
	require.ErrorIs(t, err, xcsv.ErrReadInput)
}

func TestReadEnvelopePairWithNullUnits(t *testing.T) {
	t.Parallel()

	// Foreign producers may encode plain scalars in pair shape with null
	// units; those decode back to scalars.
	input := `{"metadata":{"header":{"id":{"value":"1","units":null}},"column_headers":{}},"data":{}}`

	doc, err := xcsv.ReadEnvelope(strings.NewReader(input))
	require.NoError(t, err)

	id, ok := doc.Metadata.Header.Get("id")
	require.True(t, ok)
	assert.Equal(t, xcsv.Scalar("1"), id)
}
