package inspect

import (
	"github.com/rowscope/rowscope/internal/alias/util"
	"github.com/rowscope/rowscope/internal/fieldtype"
)

// FlattenRows walks a bounded window of table rows and emits one flat,
// row-major sequence of generic values aligned with the table's column
// order. At most limit rows are emitted; descending order walks from the
// last physical row backward. When addRowIndex is set, each row is
// prefixed with its stable object key. If rows were suppressed by the
// limit, one trailing synthetic row of truncation markers is appended
// (one marker per column, never index-prefixed).
//
// A negative limit is a contract violation and panics.
func FlattenRows(t Table, limit int64, ascending, addRowIndex bool) []any {
	util.Assert(limit >= 0, "flatten: negative row limit %d", limit)

	names := t.ColumnNames()
	keys := make([]int64, len(names))
	types := make([]fieldtype.FieldType, len(names))
	for i, name := range names {
		keys[i] = t.ColumnKey(name)
		types[i] = fieldtype.Classify(t.ColumnType(keys[i]))
	}

	size := t.RowCount()
	flat := make([]any, 0, min(limit, size)*int64(len(names)))

	for i := int64(0); i < limit && i < size; i++ {
		ordinal := i
		if !ascending {
			ordinal = size - i - 1
		}
		row := t.RowAt(ordinal)

		if addRowIndex {
			flat = append(flat, row.ObjectKey())
		}
		for c := range keys {
			flat = append(flat, FormatValue(row, keys[c], types[c]))
		}
	}

	if limit < size {
		for range keys {
			flat = append(flat, TruncatedValue)
		}
	}
	return flat
}
