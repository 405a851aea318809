package xcsv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaciome/xcsv"
)

func TestHeaderMapAdd(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		values []xcsv.HeaderValue
		want   xcsv.HeaderValue
	}{
		"new key stores the scalar directly": {
			values: []xcsv.HeaderValue{xcsv.Scalar("1")},
			want:   xcsv.Scalar("1"),
		},
		"new key stores the pair directly": {
			values: []xcsv.HeaderValue{xcsv.Pair{Value: "1897", Units: "m a.s.l."}},
			want:   xcsv.Pair{Value: "1897", Units: "m a.s.l."},
		},
		"second value promotes the scalar to a list": {
			values: []xcsv.HeaderValue{xcsv.Scalar("A"), xcsv.Scalar("B")},
			want:   xcsv.List{xcsv.Scalar("A"), xcsv.Scalar("B")},
		},
		"third value appends to the list": {
			values: []xcsv.HeaderValue{xcsv.Scalar("A"), xcsv.Scalar("B"), xcsv.Scalar("C")},
			want:   xcsv.List{xcsv.Scalar("A"), xcsv.Scalar("B"), xcsv.Scalar("C")},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := xcsv.NewHeaderMap()

			for _, v := range tc.values {
				require.NoError(t, m.Add("key", v))
			}

			got, ok := m.Get("key")
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHeaderMapAddPairIntoList(t *testing.T) {
	t.Parallel()

	m := xcsv.NewHeaderMap()
	require.NoError(t, m.Add("summary", xcsv.Scalar("First paragraph.")))
	require.NoError(t, m.Add("summary", xcsv.Scalar("Second paragraph.")))

	err := m.Add("summary", xcsv.Pair{Value: "see http", Units: "s"})
	require.ErrorIs(t, err, xcsv.ErrAmbiguousListItem)
	assert.Contains(t, err.Error(), `"see http (s)"`)

	// The value is stored before the failure is reported.
	got, ok := m.Get("summary")
	require.True(t, ok)
	assert.Equal(t, xcsv.List{
		xcsv.Scalar("First paragraph."),
		xcsv.Scalar("Second paragraph."),
		xcsv.Pair{Value: "see http", Units: "s"},
	}, got)
}

func TestHeaderMapOrder(t *testing.T) {
	t.Parallel()

	m := xcsv.NewHeaderMap()
	require.NoError(t, m.Add("id", xcsv.Scalar("1")))
	require.NoError(t, m.Add("title", xcsv.Scalar("The title")))
	require.NoError(t, m.Add("summary", xcsv.Scalar("This dataset...")))

	assert.Equal(t, []string{"id", "title", "summary"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestHeaderMapSet(t *testing.T) {
	t.Parallel()

	m := xcsv.NewHeaderMap()
	m.Set("a", xcsv.Scalar("1"))
	m.Set("b", xcsv.Scalar("2"))

	// Replacing keeps the key's original position.
	m.Set("a", xcsv.Scalar("3"))

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, xcsv.Scalar("3"), got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestListJoin(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		list    xcsv.List
		want    string
		wantErr error
	}{
		"scalars rejoin with newlines": {
			list: xcsv.List{xcsv.Scalar("A"), xcsv.Scalar("B"), xcsv.Scalar("C")},
			want: "A\nB\nC",
		},
		"single element": {
			list: xcsv.List{xcsv.Scalar("only")},
			want: "only",
		},
		"pair element is ambiguous": {
			list:    xcsv.List{xcsv.Scalar("A"), xcsv.Pair{Value: "v", Units: "u"}},
			wantErr: xcsv.ErrAmbiguousListItem,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.list.Join()

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPairString(t *testing.T) {
	t.Parallel()

	p := xcsv.Pair{Value: "-73.86", Units: "degree_north"}
	assert.Equal(t, "-73.86 (degree_north)", p.String())

	tokens := p.Tokens()
	assert.Equal(t, "-73.86", tokens.Value)
	require.NotNil(t, tokens.Units)
	assert.Equal(t, "degree_north", *tokens.Units)
}

func TestParseColumnHeaders(t *testing.T) {
	t.Parallel()

	labels := []string{"time (year) [a]", "depth (m)", "(broken)"}

	m := xcsv.ParseColumnHeaders(labels, true)

	require.Equal(t, labels, m.Labels())

	timeTokens, ok := m.Get("time (year) [a]")
	require.True(t, ok)
	assert.Equal(t, "time", timeTokens.Name)
	require.NotNil(t, timeTokens.Units)
	assert.Equal(t, "year", *timeTokens.Units)
	require.NotNil(t, timeTokens.Notes)
	assert.Equal(t, "a", *timeTokens.Notes)

	depthTokens, ok := m.Get("depth (m)")
	require.True(t, ok)
	assert.Equal(t, "depth", depthTokens.Name)
	require.NotNil(t, depthTokens.Units)
	assert.Equal(t, "m", *depthTokens.Units)
	assert.Nil(t, depthTokens.Notes)

	// An unparseable label keeps its slot with empty tokens.
	brokenTokens, ok := m.Get("(broken)")
	require.True(t, ok)
	assert.Equal(t, xcsv.ColumnHeaderTokens{}, brokenTokens)
}

func TestParseColumnHeadersVerbatim(t *testing.T) {
	t.Parallel()

	labels := []string{"time (year) [a]", "depth (m)"}

	m := xcsv.ParseColumnHeaders(labels, false)

	for _, label := range labels {
		tokens, ok := m.Get(label)
		require.True(t, ok)
		assert.Equal(t, label, tokens.Name)
		assert.Nil(t, tokens.Units)
		assert.Nil(t, tokens.Notes)
	}
}
