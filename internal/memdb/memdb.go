// Package memdb is an in-memory reference engine for the inspection
// bridge. It implements the inspect access interfaces over plain slices
// and a literal-only query grammar, standing in for a real storage
// engine in tests, the demo server, and local development.
package memdb

import (
	"fmt"
	"sync"
	"time"

	"github.com/rowscope/rowscope/internal/fieldtype"
	"github.com/rowscope/rowscope/internal/inspect"
)

// Column describes one table column. Target names the linked table for
// object and link-list columns and is empty otherwise.
type Column struct {
	Name   string
	Type   fieldtype.NativeType
	Target string
}

type row struct {
	key   int64
	cells []any
}

// Table holds rows in insertion order. Object keys are assigned once on
// append and survive deletions of other rows.
type Table struct {
	name string
	meta bool
	cols []Column

	rows    []*row
	nextKey int64
}

var _ inspect.Table = (*Table)(nil)

func (t *Table) Name() string     { return t.name }
func (t *Table) ColumnCount() int { return len(t.cols) }

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// ColumnKey returns the column's position as its stable key, or -1 for
// unknown names.
func (t *Table) ColumnKey(name string) int64 {
	for i, c := range t.cols {
		if c.Name == name {
			return int64(i)
		}
	}
	return -1
}

func (t *Table) ColumnType(key int64) fieldtype.NativeType {
	return t.cols[key].Type
}

func (t *Table) RowCount() int64 { return int64(len(t.rows)) }

func (t *Table) RowAt(ordinal int64) inspect.Row {
	return rowView{t: t, r: t.rows[ordinal]}
}

// snapshot returns a detached copy of the table's current rows. Tabular
// results escape the store lock and are flattened while other
// connections keep mutating the live table, so they must never alias
// live row storage.
func (t *Table) snapshot() *Table {
	rows := make([]*row, len(t.rows))
	for i, r := range t.rows {
		cells := make([]any, len(r.cells))
		copy(cells, r.cells)
		rows[i] = &row{key: r.key, cells: cells}
	}
	return &Table{name: t.name, meta: t.meta, cols: t.cols, rows: rows, nextKey: t.nextKey}
}

// Append adds one row with cells in column order and returns its object
// key. Cell values follow the column's native type: int64, bool, string,
// []byte, time.Time, float32, float64, int64 (object link), []int64
// (link list), []any (value list). nil marks a null cell or absent
// link/list handle.
func (t *Table) Append(values ...any) int64 {
	if len(values) != len(t.cols) {
		panic(fmt.Sprintf("memdb: %s expects %d cells, got %d", t.name, len(t.cols), len(values)))
	}
	cells := make([]any, len(values))
	copy(cells, values)

	key := t.nextKey
	t.nextKey++
	t.rows = append(t.rows, &row{key: key, cells: cells})
	return key
}

// rowView adapts one stored row to the inspect accessor surface.
type rowView struct {
	t *Table
	r *row
}

var _ inspect.Row = rowView{}

func (v rowView) ObjectKey() int64          { return v.r.key }
func (v rowView) IsNull(key int64) bool     { return v.r.cells[key] == nil }
func (v rowView) IsNullLink(key int64) bool { return v.r.cells[key] == nil }

func (v rowView) Int(key int64) int64        { return v.r.cells[key].(int64) }
func (v rowView) Bool(key int64) bool        { return v.r.cells[key].(bool) }
func (v rowView) Float(key int64) float32    { return v.r.cells[key].(float32) }
func (v rowView) Double(key int64) float64   { return v.r.cells[key].(float64) }
func (v rowView) String(key int64) string    { return v.r.cells[key].(string) }
func (v rowView) Binary(key int64) []byte    { return v.r.cells[key].([]byte) }
func (v rowView) Date(key int64) time.Time   { return v.r.cells[key].(time.Time) }
func (v rowView) Link(key int64) int64       { return v.r.cells[key].(int64) }

func (v rowView) LinkList(key int64) inspect.LinkList {
	keys, _ := v.r.cells[key].([]int64)
	return linkList{target: v.t.cols[key].Target, keys: keys}
}

func (v rowView) ValueList(key int64, _ fieldtype.FieldType) inspect.ValueList {
	return valueList(v.r.cells[key].([]any))
}

type linkList struct {
	target string
	keys   []int64
}

func (l linkList) TargetTableName() string   { return l.target }
func (l linkList) Len() int                  { return len(l.keys) }
func (l linkList) ObjectKeyAt(pos int) int64 { return l.keys[pos] }

type valueList []any

func (l valueList) Len() int            { return len(l) }
func (l valueList) ValueAt(pos int) any { return l[pos] }

// DB is one attached database: an ordered set of tables.
type DB struct {
	tables []*Table
	byName map[string]*Table
}

func NewDB() *DB {
	return &DB{byName: make(map[string]*Table)}
}

// CreateTable registers a table. meta marks engine-internal tables that
// are hidden from listings unless requested.
func (db *DB) CreateTable(name string, meta bool, cols ...Column) (*Table, error) {
	if _, exists := db.byName[name]; exists {
		return nil, fmt.Errorf("memdb: table already exists: %s", name)
	}
	t := &Table{name: name, meta: meta, cols: cols}
	db.tables = append(db.tables, t)
	db.byName[name] = t
	return t, nil
}

func (db *DB) dropTable(name string) error {
	if _, exists := db.byName[name]; !exists {
		return fmt.Errorf("memdb: no such table: %s", name)
	}
	delete(db.byName, name)
	for i, t := range db.tables {
		if t.name == name {
			db.tables = append(db.tables[:i], db.tables[i+1:]...)
			break
		}
	}
	return nil
}

func (db *DB) table(name string) (*Table, error) {
	t, ok := db.byName[name]
	if !ok {
		return nil, fmt.Errorf("memdb: no such table: %s", name)
	}
	return t, nil
}

// Store is the engine root: databases by id. All reads and mutations run
// under the store lock, and tabular results carry point-in-time row
// snapshots, so the bridge above it can stay lock-free.
type Store struct {
	mu  sync.Mutex
	dbs map[string]*DB
}

var _ inspect.Engine = (*Store)(nil)

func NewStore() *Store {
	return &Store{dbs: make(map[string]*DB)}
}

// AddDatabase attaches an empty database under id, replacing any
// previous one.
func (s *Store) AddDatabase(id string) *DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	db := NewDB()
	s.dbs[id] = db
	return db
}

func (s *Store) database(id string) (*DB, error) {
	db, ok := s.dbs[id]
	if !ok {
		return nil, fmt.Errorf("memdb: no such database: %s", id)
	}
	return db, nil
}

func (s *Store) TableNames(databaseID string, includeMeta bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.database(databaseID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(db.tables))
	for _, t := range db.tables {
		if t.meta && !includeMeta {
			continue
		}
		names = append(names, t.name)
	}
	return names, nil
}
