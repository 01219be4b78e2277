package database

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestSQLiteWorkflow(t *testing.T) {
	db := New("sqlite3", ":memory:", WithConnectionPool(1, 1, 0))
	if err := db.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	if _, err := db.DB().ExecContext(ctx, "CREATE TABLE users (id TEXT PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}

	id := NewUUID()
	if _, err := db.DB().ExecContext(ctx, "INSERT INTO users (id, name) VALUES (?, ?)", id.String(), "alice"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var name string
	if err := db.DB().QueryRowContext(ctx, "SELECT name FROM users WHERE id = ?", id.String()).Scan(&name); err != nil {
		t.Fatalf("select: %v", err)
	}
	if name != "alice" {
		t.Errorf("name = %q", name)
	}
}

func TestSQLiteTransactionRollback(t *testing.T) {
	db := New("sqlite3", ":memory:", WithConnectionPool(1, 1, 0))
	if err := db.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if _, err := db.DB().ExecContext(ctx, "CREATE TABLE t (n INTEGER)"); err != nil {
		t.Fatalf("create table: %v", err)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	tx, err = db.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
}
