package inspect

import (
	"time"

	"github.com/rowscope/rowscope/internal/fieldtype"
)

// ---- fakes ----

type fakeColumn struct {
	name   string
	native fieldtype.NativeType
}

type fakeTable struct {
	name string
	cols []fakeColumn
	rows []*fakeRow
}

func (t *fakeTable) Name() string     { return t.name }
func (t *fakeTable) ColumnCount() int { return len(t.cols) }

func (t *fakeTable) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

func (t *fakeTable) ColumnKey(name string) int64 {
	for i, c := range t.cols {
		if c.name == name {
			return int64(i)
		}
	}
	return -1
}

func (t *fakeTable) ColumnType(key int64) fieldtype.NativeType { return t.cols[key].native }
func (t *fakeTable) RowCount() int64                           { return int64(len(t.rows)) }
func (t *fakeTable) RowAt(ordinal int64) Row                   { return t.rows[ordinal] }

type fakeRow struct {
	key   int64
	cells []any
}

func (r *fakeRow) ObjectKey() int64          { return r.key }
func (r *fakeRow) IsNull(key int64) bool     { return r.cells[key] == nil }
func (r *fakeRow) IsNullLink(key int64) bool { return r.cells[key] == nil }

func (r *fakeRow) Int(key int64) int64      { return r.cells[key].(int64) }
func (r *fakeRow) Bool(key int64) bool      { return r.cells[key].(bool) }
func (r *fakeRow) Float(key int64) float32  { return r.cells[key].(float32) }
func (r *fakeRow) Double(key int64) float64 { return r.cells[key].(float64) }
func (r *fakeRow) String(key int64) string  { return r.cells[key].(string) }
func (r *fakeRow) Binary(key int64) []byte  { return r.cells[key].([]byte) }
func (r *fakeRow) Date(key int64) time.Time { return r.cells[key].(time.Time) }
func (r *fakeRow) Link(key int64) int64     { return r.cells[key].(int64) }

func (r *fakeRow) LinkList(key int64) LinkList {
	if r.cells[key] == nil {
		return fakeLinkList{}
	}
	return r.cells[key].(fakeLinkList)
}

func (r *fakeRow) ValueList(key int64, _ fieldtype.FieldType) ValueList {
	return fakeValueList(r.cells[key].([]any))
}

type fakeLinkList struct {
	target string
	keys   []int64
}

func (l fakeLinkList) TargetTableName() string   { return l.target }
func (l fakeLinkList) Len() int                  { return len(l.keys) }
func (l fakeLinkList) ObjectKeyAt(pos int) int64 { return l.keys[pos] }

type fakeValueList []any

func (l fakeValueList) Len() int            { return len(l) }
func (l fakeValueList) ValueAt(pos int) any { return l[pos] }

// oneCellRow builds a single-column row holding the given cell.
func oneCellRow(cell any) *fakeRow {
	return &fakeRow{key: 0, cells: []any{cell}}
}
