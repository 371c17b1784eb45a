package rowscopewire

import "github.com/rowscope/rowscope/internal/inspect"

// Methods a peer can invoke. The names follow the DevTools database
// domain so existing inspection clients feel at home.
const (
	MethodEnable     = "Database.enable"
	MethodDisable    = "Database.disable"
	MethodTableNames = "Database.getDatabaseTableNames"
	MethodExecuteSQL = "Database.executeSQL"
)

// Request is one framed inspection request.
type Request struct {
	ID         uint64 `json:"id"`
	Method     string `json:"method"`
	DatabaseID string `json:"databaseId,omitempty"`
	Query      string `json:"query,omitempty"`
}

// Response answers the request with the matching ID. Error carries
// transport-level failures (unknown method, unknown database); query
// execution failures travel inside Result as a structured sqlError.
type Response struct {
	ID         uint64            `json:"id"`
	TableNames []string          `json:"tableNames,omitempty"`
	Result     *inspect.Response `json:"result,omitempty"`
	Error      string            `json:"error,omitempty"`
}
