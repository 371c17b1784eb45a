package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowscope/rowscope/internal/fieldtype"
)

func idNameTable() *fakeTable {
	return &fakeTable{
		name: "users",
		cols: []fakeColumn{
			{name: "id", native: fieldtype.NativeInteger},
			{name: "name", native: fieldtype.NativeString},
		},
		rows: []*fakeRow{
			{key: 100, cells: []any{int64(1), "a"}},
			{key: 101, cells: []any{int64(2), nil}},
		},
	}
}

func TestFlattenRows_RowMajorWithNulls(t *testing.T) {
	got := FlattenRows(idNameTable(), 10, true, false)
	require.Equal(t, []any{int64(1), "a", int64(2), NullValue}, got)
}

func TestFlattenRows_LimitWindowsRows(t *testing.T) {
	tbl := idNameTable()

	got := FlattenRows(tbl, 1, true, false)
	// one data row plus one truncation marker per column
	require.Equal(t, []any{int64(1), "a", TruncatedValue, TruncatedValue}, got)

	// limit == rowCount: no markers
	got = FlattenRows(tbl, 2, true, false)
	require.Equal(t, []any{int64(1), "a", int64(2), NullValue}, got)

	// limit 0 with rows remaining: only the marker row
	got = FlattenRows(tbl, 0, true, false)
	require.Equal(t, []any{TruncatedValue, TruncatedValue}, got)
}

func TestFlattenRows_TruncationRowIsNeverIndexPrefixed(t *testing.T) {
	got := FlattenRows(idNameTable(), 1, true, true)
	// 1 data row of (index + 2 columns) + exactly columnCount markers
	require.Len(t, got, 3+2)
	require.Equal(t, []any{TruncatedValue, TruncatedValue}, got[3:])
}

func TestFlattenRows_DescendingWalksPhysicalOrdinalsBackward(t *testing.T) {
	got := FlattenRows(idNameTable(), 10, false, false)
	require.Equal(t, []any{int64(2), NullValue, int64(1), "a"}, got)
}

func TestFlattenRows_RowIndexIsObjectKey(t *testing.T) {
	got := FlattenRows(idNameTable(), 10, true, true)
	require.Equal(t, []any{int64(100), int64(1), "a", int64(101), int64(2), NullValue}, got)

	// Descending order still reports the stable key, not the ordinal.
	got = FlattenRows(idNameTable(), 10, false, true)
	require.Equal(t, int64(101), got[0])
}

func TestFlattenRows_EmptyTable(t *testing.T) {
	tbl := &fakeTable{
		name: "empty",
		cols: []fakeColumn{{name: "id", native: fieldtype.NativeInteger}},
	}
	require.Empty(t, FlattenRows(tbl, 10, true, false))
	require.Empty(t, FlattenRows(tbl, 0, true, false))
}

func TestFlattenRows_NegativeLimitPanics(t *testing.T) {
	require.Panics(t, func() {
		FlattenRows(idNameTable(), -1, true, false)
	})
}
