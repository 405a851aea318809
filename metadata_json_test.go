package xcsv_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaciome/xcsv"
)

func TestHeaderMapMarshalJSON(t *testing.T) {
	t.Parallel()

	m := xcsv.NewHeaderMap()
	require.NoError(t, m.Add("z", xcsv.Scalar("last shall be first")))
	require.NoError(t, m.Add("a", xcsv.Pair{Value: "1", Units: "m"}))
	require.NoError(t, m.Add("list", xcsv.Scalar("one")))
	require.NoError(t, m.Add("list", xcsv.Scalar("two")))

	out, err := json.Marshal(m)
	require.NoError(t, err)

	// Insertion order, not lexical order.
	assert.Equal(t,
		`{"z":"last shall be first","a":{"value":"1","units":"m"},"list":["one","two"]}`,
		string(out))
}

func TestHeaderMapUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		key   string
		want  xcsv.HeaderValue
	}{
		"string decodes to a scalar": {
			input: `{"id":"1"}`,
			key:   "id",
			want:  xcsv.Scalar("1"),
		},
		"object decodes to a pair": {
			input: `{"elevation":{"value":"2132","units":"m a.s.l."}}`,
			key:   "elevation",
			want:  xcsv.Pair{Value: "2132", Units: "m a.s.l."},
		},
		"null units decode to a scalar": {
			input: `{"id":{"value":"1","units":null}}`,
			key:   "id",
			want:  xcsv.Scalar("1"),
		},
		"array decodes to a list": {
			input: `{"summary":["A","B"]}`,
			key:   "summary",
			want:  xcsv.List{xcsv.Scalar("A"), xcsv.Scalar("B")},
		},
		"bare number keeps its literal text": {
			input: `{"id":1.50}`,
			key:   "id",
			want:  xcsv.Scalar("1.50"),
		},
		"bare boolean keeps its literal text": {
			input: `{"flag":true}`,
			key:   "flag",
			want:  xcsv.Scalar("true"),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var m xcsv.HeaderMap

			require.NoError(t, json.Unmarshal([]byte(tc.input), &m))

			got, ok := m.Get(tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHeaderMapUnmarshalPreservesOrder(t *testing.T) {
	t.Parallel()

	input := `{"z":"1","m":"2","a":"3"}`

	var m xcsv.HeaderMap

	require.NoError(t, json.Unmarshal([]byte(input), &m))
	assert.Equal(t, []string{"z", "m", "a"}, m.Keys())
}

func TestHeaderMapUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var m xcsv.HeaderMap

	err := json.Unmarshal([]byte(`["not","an","object"]`), &m)
	require.ErrorIs(t, err, xcsv.ErrInvalidMetadataJSON)
}

func TestColumnHeaderMapJSON(t *testing.T) {
	t.Parallel()

	m := xcsv.NewColumnHeaderMap()
	m.Set("time (year) [a]", xcsv.ColumnHeaderTokens{Name: "time", Units: ptr("year"), Notes: ptr("a")})
	m.Set("depth (m)", xcsv.ColumnHeaderTokens{Name: "depth", Units: ptr("m")})

	out, err := json.Marshal(m)
	require.NoError(t, err)

	want := `{"time (year) [a]":{"name":"time","units":"year","notes":"a"},` +
		`"depth (m)":{"name":"depth","units":"m","notes":null}}`
	assert.Equal(t, want, string(out))

	var decoded xcsv.ColumnHeaderMap

	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, m.Labels(), decoded.Labels())

	tokens, ok := decoded.Get("depth (m)")
	require.True(t, ok)
	assert.Equal(t, "depth", tokens.Name)
	require.NotNil(t, tokens.Units)
	assert.Equal(t, "m", *tokens.Units)
	assert.Nil(t, tokens.Notes)
}
