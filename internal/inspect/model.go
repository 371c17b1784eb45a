// Package inspect is the core of the inspection bridge: it turns a
// window of natively typed rows into one flat sequence of generic,
// transport-friendly values, and maps query outcomes onto the small set
// of response shapes the inspection client understands.
//
// The package owns no storage. Everything it reads arrives through the
// Table/Row interfaces below, implemented by the attached engine. All
// handles are read-only borrows scoped to one request.
package inspect

import (
	"time"

	"github.com/rowscope/rowscope/internal/fieldtype"
)

// Table is a read-only view onto one table of the underlying engine.
// Column order is fixed for the lifetime of a flattening operation.
type Table interface {
	// Name is the table's name as shown to the client.
	Name() string
	ColumnCount() int
	ColumnNames() []string
	// ColumnKey resolves a column name to the stable key used by Row accessors.
	ColumnKey(name string) int64
	ColumnType(key int64) fieldtype.NativeType
	RowCount() int64
	// RowAt resolves the row at a physical ordinal in [0, RowCount).
	RowAt(ordinal int64) Row
}

// Row exposes nullability and typed accessors over one row, addressed by
// column key. Accessors must only be called for cells of the matching
// type; nullable cells must be checked with IsNull/IsNullLink first.
type Row interface {
	// ObjectKey is the row's stable identifier, independent of the
	// traversal order that produced it.
	ObjectKey() int64

	IsNull(key int64) bool
	// IsNullLink reports whether a link or list handle is absent.
	IsNullLink(key int64) bool

	Int(key int64) int64
	Bool(key int64) bool
	Float(key int64) float32
	Double(key int64) float64
	String(key int64) string
	Binary(key int64) []byte
	Date(key int64) time.Time
	// Link returns the object key of the referenced row.
	Link(key int64) int64
	LinkList(key int64) LinkList
	ValueList(key int64, t fieldtype.FieldType) ValueList
}

// LinkList is an ordered collection of links into another table.
type LinkList interface {
	TargetTableName() string
	Len() int
	ObjectKeyAt(pos int) int64
}

// ValueList is an ordered collection of scalar values. ValueAt returns
// the container's native value as-is; elements get no per-element null
// or NaN substitution.
type ValueList interface {
	Len() int
	ValueAt(pos int) any
}
