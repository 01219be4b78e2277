package contracts

import (
	"context"
	"database/sql"
)

type ID interface {
	String() string
	IsValid() bool
}

type Transaction interface {
	Commit() error
	Rollback() error
}

type Database interface {
	Connect() error
	Close() error
	Ping(ctx context.Context) error
	BeginTx(ctx context.Context) (Transaction, error)
	DB() *sql.DB
}

type DatabasePool interface {
	Get(name string) (Database, bool)
	Default() (Database, bool)
	Names() []string
	CloseAll() error
}
