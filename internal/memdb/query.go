package memdb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/rowscope/rowscope/internal/fieldtype"
	"github.com/rowscope/rowscope/internal/inspect"
)

// Execute runs one statement of the demo grammar and reports its
// outcome. Supported forms:
//
//	SELECT * FROM <table>
//	INSERT INTO <table> VALUES (<lit>, ...)
//	UPDATE <table> SET <col> = <lit>
//	DELETE FROM <table>
//	CREATE TABLE <table> (<col> <TYPE>, ...)
//	DROP TABLE <table>
//
// Literals: NULL, true/false, 'string', integers, floats. Anything else
// is an execution error for the bridge to surface.
func (s *Store) Execute(databaseID, query string) (inspect.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.database(databaseID)
	if err != nil {
		return nil, err
	}
	return db.execute(query)
}

func (db *DB) execute(query string) (inspect.Outcome, error) {
	q := strings.TrimSpace(query)
	q = strings.TrimSuffix(q, ";")
	q = strings.TrimSpace(q)

	fields := strings.Fields(q)
	if len(fields) == 0 {
		return nil, errors.New("memdb: empty query")
	}

	switch strings.ToUpper(fields[0]) {
	case "SELECT":
		return db.execSelect(fields)
	case "INSERT":
		return db.execInsert(q, fields)
	case "UPDATE":
		return db.execUpdate(q, fields)
	case "DELETE":
		return db.execDelete(fields)
	case "CREATE":
		return db.execCreate(q, fields)
	case "DROP":
		return db.execDrop(fields)
	default:
		return nil, fmt.Errorf("memdb: unsupported statement: %s", fields[0])
	}
}

func (db *DB) execSelect(fields []string) (inspect.Outcome, error) {
	if len(fields) != 4 || fields[1] != "*" || !strings.EqualFold(fields[2], "FROM") {
		return nil, errors.New("memdb: expected SELECT * FROM <table>")
	}
	t, err := db.table(fields[3])
	if err != nil {
		return nil, err
	}
	return inspect.TabularResult{Table: t.snapshot(), AddRowIndex: true}, nil
}

func (db *DB) execInsert(q string, fields []string) (inspect.Outcome, error) {
	if len(fields) < 4 || !strings.EqualFold(fields[1], "INTO") {
		return nil, errors.New("memdb: expected INSERT INTO <table> VALUES (...)")
	}
	t, err := db.table(fields[2])
	if err != nil {
		return nil, err
	}

	open := strings.Index(q, "(")
	end := strings.LastIndex(q, ")")
	if open < 0 || end < open {
		return nil, errors.New("memdb: INSERT is missing a value list")
	}

	lits := splitLiterals(q[open+1 : end])
	if len(lits) != len(t.cols) {
		return nil, fmt.Errorf("memdb: %s expects %d values, got %d", t.name, len(t.cols), len(lits))
	}

	cells := make([]any, len(lits))
	for i, lit := range lits {
		v, err := coerceLiteral(t.cols[i], lit)
		if err != nil {
			return nil, err
		}
		cells[i] = v
	}

	return inspect.InsertResult{ID: t.Append(cells...)}, nil
}

func (db *DB) execUpdate(q string, fields []string) (inspect.Outcome, error) {
	if len(fields) < 4 || !strings.EqualFold(fields[2], "SET") {
		return nil, errors.New("memdb: expected UPDATE <table> SET <col> = <value>")
	}
	t, err := db.table(fields[1])
	if err != nil {
		return nil, err
	}

	// everything after the third token (UPDATE <table> SET) is the
	// assignment; the tokens may be separated by any whitespace
	assign := q
	for i := 0; i < 3; i++ {
		assign = cutToken(assign)
	}
	name, lit, ok := strings.Cut(assign, "=")
	if !ok {
		return nil, errors.New("memdb: expected UPDATE <table> SET <col> = <value>")
	}

	key := t.ColumnKey(strings.TrimSpace(name))
	if key < 0 {
		return nil, fmt.Errorf("memdb: no such column: %s", strings.TrimSpace(name))
	}
	v, err := coerceLiteral(t.cols[key], strings.TrimSpace(lit))
	if err != nil {
		return nil, err
	}

	for _, r := range t.rows {
		r.cells[key] = v
	}
	return inspect.ModifyResult{Count: int64(len(t.rows))}, nil
}

func (db *DB) execDelete(fields []string) (inspect.Outcome, error) {
	if len(fields) != 3 || !strings.EqualFold(fields[1], "FROM") {
		return nil, errors.New("memdb: expected DELETE FROM <table>")
	}
	t, err := db.table(fields[2])
	if err != nil {
		return nil, err
	}
	count := int64(len(t.rows))
	t.rows = nil
	return inspect.ModifyResult{Count: count}, nil
}

func (db *DB) execCreate(q string, fields []string) (inspect.Outcome, error) {
	if len(fields) < 3 || !strings.EqualFold(fields[1], "TABLE") {
		return nil, errors.New("memdb: expected CREATE TABLE <table> (...)")
	}

	open := strings.Index(q, "(")
	end := strings.LastIndex(q, ")")
	if open < 0 || end < open {
		return nil, errors.New("memdb: CREATE TABLE is missing a column list")
	}

	var cols []Column
	for _, def := range splitLiterals(q[open+1 : end]) {
		parts := strings.Fields(def)
		if len(parts) != 2 {
			return nil, fmt.Errorf("memdb: bad column definition: %q", def)
		}
		native, ok := scalarTypes[strings.ToUpper(parts[1])]
		if !ok {
			return nil, fmt.Errorf("memdb: unsupported column type: %s", parts[1])
		}
		cols = append(cols, Column{Name: parts[0], Type: native})
	}

	if _, err := db.CreateTable(fields[2], false, cols...); err != nil {
		return nil, err
	}
	return inspect.Acknowledgement{}, nil
}

func (db *DB) execDrop(fields []string) (inspect.Outcome, error) {
	if len(fields) != 3 || !strings.EqualFold(fields[1], "TABLE") {
		return nil, errors.New("memdb: expected DROP TABLE <table>")
	}
	if err := db.dropTable(fields[2]); err != nil {
		return nil, err
	}
	return inspect.Acknowledgement{}, nil
}

// scalarTypes are the column types CREATE TABLE accepts.
var scalarTypes = map[string]fieldtype.NativeType{
	"INTEGER": fieldtype.NativeInteger,
	"BOOLEAN": fieldtype.NativeBoolean,
	"STRING":  fieldtype.NativeString,
	"BINARY":  fieldtype.NativeBinary,
	"DATE":    fieldtype.NativeDate,
	"FLOAT":   fieldtype.NativeFloat,
	"DOUBLE":  fieldtype.NativeDouble,
}

// cutToken drops the leading whitespace-delimited token from s.
func cutToken(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return ""
	}
	return s[i:]
}

// splitLiterals splits a comma-separated list, keeping commas inside
// single quotes.
func splitLiterals(s string) []string {
	var (
		out     []string
		start   int
		inQuote bool
	)
	for i, r := range s {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ',' && !inQuote:
			out = append(out, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	tail := strings.TrimSpace(s[start:])
	if tail != "" || len(out) > 0 {
		out = append(out, tail)
	}
	return out
}

// coerceLiteral parses one literal against the column's native type.
// Dates are epoch milliseconds.
func coerceLiteral(col Column, lit string) (any, error) {
	if strings.EqualFold(lit, "NULL") {
		return nil, nil
	}

	switch col.Type {
	case fieldtype.NativeInteger:
		i, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("memdb: column %s expects an integer, got %q", col.Name, lit)
		}
		return i, nil

	case fieldtype.NativeBoolean:
		b, err := strconv.ParseBool(strings.ToLower(lit))
		if err != nil {
			return nil, fmt.Errorf("memdb: column %s expects a boolean, got %q", col.Name, lit)
		}
		return b, nil

	case fieldtype.NativeString:
		if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
			return nil, fmt.Errorf("memdb: column %s expects a quoted string, got %q", col.Name, lit)
		}
		return lit[1 : len(lit)-1], nil

	case fieldtype.NativeFloat:
		f, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			return nil, fmt.Errorf("memdb: column %s expects a float, got %q", col.Name, lit)
		}
		return float32(f), nil

	case fieldtype.NativeDouble:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("memdb: column %s expects a double, got %q", col.Name, lit)
		}
		return f, nil

	case fieldtype.NativeDate:
		ms, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("memdb: column %s expects epoch milliseconds, got %q", col.Name, lit)
		}
		return time.UnixMilli(ms).UTC(), nil

	default:
		return nil, fmt.Errorf("memdb: cannot insert into column %s of type %v", col.Name, col.Type)
	}
}
