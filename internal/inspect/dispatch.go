package inspect

import "fmt"

// Outcome is the result of one executed query, one variant per kind.
// Constructed by the engine, consumed immediately by the Dispatcher.
type Outcome interface{ outcome() }

// Acknowledgement reports that a non-select statement succeeded.
type Acknowledgement struct{}

// TabularResult carries the table produced by a select, plus whether a
// synthetic row-index column should be prepended.
type TabularResult struct {
	Table       Table
	AddRowIndex bool
}

// InsertResult carries the object key of the newly inserted row.
type InsertResult struct{ ID int64 }

// ModifyResult carries the number of rows an update/delete touched.
type ModifyResult struct{ Count int64 }

func (Acknowledgement) outcome() {}
func (TabularResult) outcome()   {}
func (InsertResult) outcome()    {}
func (ModifyResult) outcome()    {}

// Engine is the external query-execution facility the bridge attaches
// to. Execution failures are expected and become QueryError responses at
// the boundary.
type Engine interface {
	// TableNames lists the tables of one attached database in stable
	// order, including engine-internal tables only when includeMeta is set.
	TableNames(databaseID string, includeMeta bool) ([]string, error)

	// Execute runs one ad-hoc query and reports which outcome it produced.
	Execute(databaseID, query string) (Outcome, error)
}

// Response is the shape of every finished query: parallel column names
// and a flat value sequence whose length is an exact multiple of the
// column count, or a structured error instead of a body.
type Response struct {
	ColumnNames []string    `json:"columnNames,omitempty"`
	Values      []any       `json:"values,omitempty"`
	Error       *QueryError `json:"sqlError,omitempty"`
}

// QueryError renders an execution failure inline in the client. The
// engine does not distinguish error classes, so Code is always 0.
type QueryError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Dispatcher builds the response for a query outcome. Limit and
// Ascending govern the row window of tabular results.
type Dispatcher struct {
	Limit     int64
	Ascending bool
}

// Dispatch maps an outcome onto its response shape.
func (d Dispatcher) Dispatch(out Outcome) Response {
	switch o := out.(type) {
	case Acknowledgement:
		return Response{
			ColumnNames: []string{"success"},
			Values:      []any{"true"},
		}

	case TabularResult:
		names := make([]string, 0, o.Table.ColumnCount()+1)
		if o.AddRowIndex {
			names = append(names, "<index>")
		}
		names = append(names, o.Table.ColumnNames()...)
		return Response{
			ColumnNames: names,
			Values:      FlattenRows(o.Table, d.Limit, d.Ascending, o.AddRowIndex),
		}

	case InsertResult:
		return Response{
			ColumnNames: []string{"ID of last inserted row"},
			Values:      []any{o.ID},
		}

	case ModifyResult:
		return Response{
			ColumnNames: []string{"Modified rows"},
			Values:      []any{o.Count},
		}

	default:
		return Response{Error: &QueryError{
			Code:    0,
			Message: fmt.Sprintf("unsupported query outcome %T", out),
		}}
	}
}
