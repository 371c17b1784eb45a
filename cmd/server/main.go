package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/rowscope/rowscope"
	"github.com/rowscope/rowscope/internal"
	"github.com/rowscope/rowscope/internal/fieldtype"
	"github.com/rowscope/rowscope/internal/memdb"
	"github.com/rowscope/rowscope/server/rowscopewire"
)

func main() {
	cfgPath := flag.String("config", "", "path to yaml config (optional)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := defaultConfig()
	if *cfgPath != "" {
		loaded, err := internal.LoadConfig(*cfgPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if cfg.Server.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	store := memdb.NewStore()
	seedDemo(store)

	for id, params := range cfg.Databases {
		store.AddDatabase(id)
		if params.EncryptionKey != "" {
			// memdb holds nothing on disk; keys only matter for engines
			// that open encrypted files.
			slog.Warn("memdb ignores encryption keys", "database", id)
		}
	}

	ins := rowscope.New(store, rowscope.Options{
		WithMetaTables: cfg.Inspector.WithMetaTables,
		Limit:          cfg.Inspector.Limit,
		Ascending:      cfg.Inspector.Ascending,
	})

	if err := rowscopewire.Run(rowscopewire.ServerConfig{Addr: cfg.Server.Addr}, ins); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func defaultConfig() *internal.RowscopeConfig {
	cfg := &internal.RowscopeConfig{AppName: "rowscope"}
	cfg.Inspector.Limit = 250
	cfg.Inspector.Ascending = true
	cfg.Server.Addr = "127.0.0.1:8867"
	return cfg
}

// seedDemo attaches a "default" database with a few rows so the client
// has something to look at out of the box.
func seedDemo(store *memdb.Store) {
	db := store.AddDatabase("default")

	people, _ := db.CreateTable("people", false,
		memdb.Column{Name: "id", Type: fieldtype.NativeInteger},
		memdb.Column{Name: "name", Type: fieldtype.NativeString},
		memdb.Column{Name: "balance", Type: fieldtype.NativeDouble},
		memdb.Column{Name: "joined", Type: fieldtype.NativeDate},
		memdb.Column{Name: "tags", Type: fieldtype.NativeStringList},
		memdb.Column{Name: "friends", Type: fieldtype.NativeLinkList, Target: "people"},
	)

	joined := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)
	alice := people.Append(int64(1), "alice", 10.5, joined, []any{"admin", "ops"}, []int64{})
	people.Append(int64(2), "bob", nil, nil, []any{}, []int64{alice})

	// Engine-internal bookkeeping table, hidden unless with_meta_tables.
	pk, _ := db.CreateTable("pk", true,
		memdb.Column{Name: "table", Type: fieldtype.NativeString},
		memdb.Column{Name: "column", Type: fieldtype.NativeString},
	)
	pk.Append("people", "id")
}
