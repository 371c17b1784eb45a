package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowscope/rowscope/internal/fieldtype"
)

func TestDispatch_Acknowledgement(t *testing.T) {
	d := Dispatcher{Limit: 10, Ascending: true}

	res := d.Dispatch(Acknowledgement{})
	require.Equal(t, []string{"success"}, res.ColumnNames)
	require.Equal(t, []any{"true"}, res.Values)
	require.Nil(t, res.Error)
}

func TestDispatch_InsertResult(t *testing.T) {
	d := Dispatcher{Limit: 10, Ascending: true}

	res := d.Dispatch(InsertResult{ID: 7})
	require.Equal(t, []string{"ID of last inserted row"}, res.ColumnNames)
	require.Equal(t, []any{int64(7)}, res.Values)
}

func TestDispatch_ModifyResult(t *testing.T) {
	d := Dispatcher{Limit: 10, Ascending: true}

	res := d.Dispatch(ModifyResult{Count: 3})
	require.Equal(t, []string{"Modified rows"}, res.ColumnNames)
	require.Equal(t, []any{int64(3)}, res.Values)
}

func TestDispatch_TabularResult(t *testing.T) {
	d := Dispatcher{Limit: 10, Ascending: true}
	tbl := &fakeTable{
		name: "users",
		cols: []fakeColumn{
			{name: "id", native: fieldtype.NativeInteger},
			{name: "name", native: fieldtype.NativeString},
		},
		rows: []*fakeRow{
			{key: 100, cells: []any{int64(1), "a"}},
		},
	}

	res := d.Dispatch(TabularResult{Table: tbl})
	require.Equal(t, []string{"id", "name"}, res.ColumnNames)
	require.Equal(t, []any{int64(1), "a"}, res.Values)

	res = d.Dispatch(TabularResult{Table: tbl, AddRowIndex: true})
	require.Equal(t, []string{"<index>", "id", "name"}, res.ColumnNames)
	require.Equal(t, []any{int64(100), int64(1), "a"}, res.Values)

	// values length is always a multiple of the column count
	require.Zero(t, len(res.Values)%len(res.ColumnNames))
}

func TestDispatch_TabularResultHonorsLimit(t *testing.T) {
	d := Dispatcher{Limit: 1, Ascending: false}
	tbl := idNameTable()

	res := d.Dispatch(TabularResult{Table: tbl})
	// descending: last physical row first, then the truncation row
	require.Equal(t, []any{int64(2), NullValue, TruncatedValue, TruncatedValue}, res.Values)
}
