package rowscopewire

import (
	"context"
	"fmt"
	"log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/rowscope/rowscope"
)

type ServerConfig struct {
	Addr string
}

// Run serves inspection requests until SIGINT/SIGTERM. Each connection
// is one peer; requests on a connection run sequentially.
func Run(sc ServerConfig, ins *rowscope.Inspector) error {
	ln, err := net.Listen("tcp", sc.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer func() { _ = ln.Close() }()

	log.Printf("rowscope tcp server listening on %s", sc.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			log.Printf("accept: %v", err)
			continue
		}
		go handleConn(ctx, conn, ins)
	}
}

func handleConn(ctx context.Context, conn net.Conn, ins *rowscope.Inspector) {
	peer := conn.RemoteAddr().String()
	defer func() {
		// A dropped connection detaches the peer even without a disable.
		ins.RemovePeer(peer)
		_ = conn.Close()
	}()

	// No global deadline; per-request deadlines can be set if needed.
	_ = conn.SetDeadline(time.Time{})

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var req Request
		if err := ReadFrame(conn, &req); err != nil {
			// Client closed or bad frame.
			return
		}

		_ = WriteFrame(conn, handleRequest(ins, peer, req))
	}
}

func handleRequest(ins *rowscope.Inspector, peer string, req Request) Response {
	switch req.Method {
	case MethodEnable:
		ins.AddPeer(peer)
		return Response{ID: req.ID}

	case MethodDisable:
		ins.RemovePeer(peer)
		return Response{ID: req.ID}

	case MethodTableNames:
		names, err := ins.ListTables(req.DatabaseID)
		if err != nil {
			return Response{ID: req.ID, Error: err.Error()}
		}
		return Response{ID: req.ID, TableNames: names}

	case MethodExecuteSQL:
		res := ins.ExecuteQuery(req.DatabaseID, req.Query)
		return Response{ID: req.ID, Result: &res}

	default:
		return Response{ID: req.ID, Error: fmt.Sprintf("unknown method: %s", req.Method)}
	}
}
