// Package testdb opens throwaway in-memory databases for service tests.
package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/fundacionaurora/clinica_backend/internal/repo"
)

var dbSeq atomic.Int64

// New returns an ent client backed by a fresh in-memory SQLite database with
// the full schema created. The client is closed when the test finishes.
func New(t *testing.T) *repo.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A single connection keeps the shared-cache memory DB alive and avoids
	// SQLITE_BUSY under concurrent test access.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := repo.NewClient(repo.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
