package xcsv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaciome/xcsv"
)

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")

	require.NoError(t, os.WriteFile(in, []byte(exampleText), 0o644))

	doc, err := xcsv.ReadFile(in)
	require.NoError(t, err)

	require.NoError(t, xcsv.WriteFile(out, doc))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, exampleText, string(written))
}

func TestFileLatin1(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.csv")

	// "# title: São Paulo\ntime\n1\n" in ISO 8859-1: ã is 0xE3.
	raw := []byte("# title: S\xe3o Paulo\ntime\n1\n")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	doc, err := xcsv.ReadFile(path, xcsv.WithEncoding("latin1"))
	require.NoError(t, err)

	title, ok := doc.Metadata.Header.Get("title")
	require.True(t, ok)
	assert.Equal(t, xcsv.Scalar("São Paulo"), title)

	// Writing back with the same encoding restores the original bytes.
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, xcsv.WriteFile(out, doc, xcsv.WithEncoding("latin1")))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, raw, written)
}

func TestFileUTF8BOM(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bom.csv")

	require.NoError(t, os.WriteFile(path, []byte("\uFEFF# id: 1\ntime\n1\n"), 0o644))

	doc, err := xcsv.ReadFile(path)
	require.NoError(t, err)

	id, ok := doc.Metadata.Header.Get("id")
	require.True(t, ok)
	assert.Equal(t, xcsv.Scalar("1"), id)
}

func TestFileUnknownEncoding(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")

	require.NoError(t, os.WriteFile(path, []byte(exampleText), 0o644))

	_, err := xcsv.ReadFile(path, xcsv.WithEncoding("no-such-encoding"))
	require.ErrorIs(t, err, xcsv.ErrUnknownEncoding)
}

func TestFileMissing(t *testing.T) {
	t.Parallel()

	_, err := xcsv.ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, xcsv.ErrReadInput)
}

func TestFileJSONRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	text := filepath.Join(dir, "in.csv")
	envelope := filepath.Join(dir, "doc.json")

	require.NoError(t, os.WriteFile(text, []byte(exampleText), 0o644))

	doc, err := xcsv.ReadFile(text)
	require.NoError(t, err)

	require.NoError(t, xcsv.WriteFileJSON(envelope, doc))

	decoded, err := xcsv.ReadFileJSON(envelope)
	require.NoError(t, err)

	assert.Equal(t, doc.Metadata.Header.Keys(), decoded.Metadata.Header.Keys())
	assert.True(t, doc.Data.Equal(decoded.Data))
}
