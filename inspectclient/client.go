// Package inspectclient is a synchronous client for the rowscope wire
// protocol.
package inspectclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rowscope/rowscope/internal/inspect"
	"github.com/rowscope/rowscope/server/rowscopewire"
)

// Client is a simple synchronous client.
// It locks send/recv so you can call it concurrently but calls serialize.
type Client struct {
	conn net.Conn
	mu   sync.Mutex
	id   atomic.Uint64

	// Optional per-request timeout (0 = no timeout).
	rwTimeout time.Duration
}

func Dial(addr string, timeout time.Duration) (*Client, error) {
	d := net.Dialer{Timeout: timeout}
	c, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: c}, nil
}

func DialContext(ctx context.Context, addr string, timeout time.Duration) (*Client, error) {
	d := net.Dialer{Timeout: timeout}
	c, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: c}, nil
}

// SetRWTimeout sets a per-call read/write deadline.
// Useful to avoid hanging forever if the server dies.
func (c *Client) SetRWTimeout(d time.Duration) {
	if c == nil {
		return
	}
	c.rwTimeout = d
}

func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Enable registers this connection as an inspection peer.
func (c *Client) Enable(ctx context.Context) error {
	_, err := c.call(ctx, rowscopewire.Request{Method: rowscopewire.MethodEnable})
	return err
}

// Disable unregisters this connection.
func (c *Client) Disable(ctx context.Context) error {
	_, err := c.call(ctx, rowscopewire.Request{Method: rowscopewire.MethodDisable})
	return err
}

// ListTables fetches the table names of one database.
func (c *Client) ListTables(ctx context.Context, databaseID string) ([]string, error) {
	resp, err := c.call(ctx, rowscopewire.Request{
		Method:     rowscopewire.MethodTableNames,
		DatabaseID: databaseID,
	})
	if err != nil {
		return nil, err
	}
	return resp.TableNames, nil
}

// ExecuteQuery runs one query. Execution failures arrive inside the
// response body as a structured error, not as a Go error.
func (c *Client) ExecuteQuery(ctx context.Context, databaseID, query string) (*inspect.Response, error) {
	resp, err := c.call(ctx, rowscopewire.Request{
		Method:     rowscopewire.MethodExecuteSQL,
		DatabaseID: databaseID,
		Query:      query,
	})
	if err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("inspectclient: response has no result")
	}
	return resp.Result, nil
}

func (c *Client) call(ctx context.Context, req rowscopewire.Request) (*rowscopewire.Response, error) {
	if c == nil || c.conn == nil {
		return nil, fmt.Errorf("inspectclient: nil client")
	}

	req.ID = c.id.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.applyDeadline(ctx); err != nil {
		return nil, err
	}
	defer func() {
		// Clear deadline after the call so an idle connection doesn't expire.
		_ = c.conn.SetDeadline(time.Time{})
	}()

	if err := rowscopewire.WriteFrame(c.conn, req); err != nil {
		return nil, err
	}

	var resp rowscopewire.Response
	if err := rowscopewire.ReadFrame(c.conn, &resp); err != nil {
		return nil, err
	}

	if resp.ID != req.ID {
		return nil, fmt.Errorf("inspectclient: response id mismatch: got=%d want=%d", resp.ID, req.ID)
	}
	if resp.Error != "" {
		return nil, errors.New(resp.Error)
	}
	return &resp, nil
}

func (c *Client) applyDeadline(ctx context.Context) error {
	// Prefer context deadline if present; otherwise use rwTimeout.
	if dl, ok := ctx.Deadline(); ok {
		return c.conn.SetDeadline(dl)
	}
	if c.rwTimeout > 0 {
		return c.conn.SetDeadline(time.Now().Add(c.rwTimeout))
	}
	return nil
}
