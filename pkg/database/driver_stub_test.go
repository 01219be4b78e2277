package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync/atomic"
)

// stub driver so connection handling is testable without a real database

type stubDriver struct {
	opens atomic.Int64
}

func (d *stubDriver) Open(name string) (driver.Conn, error) {
	d.opens.Add(1)
	return stubConn{}, nil
}

type failingDriver struct{}

func (failingDriver) Open(name string) (driver.Conn, error) {
	return nil, errors.New("connection refused")
}

type stubConn struct{}

func (stubConn) Prepare(query string) (driver.Stmt, error) {
	return stubStmt{}, nil
}

func (stubConn) Close() error {
	return nil
}

func (stubConn) Begin() (driver.Tx, error) {
	return stubTx{}, nil
}

type stubStmt struct{}

func (stubStmt) Close() error                                    { return nil }
func (stubStmt) NumInput() int                                   { return 0 }
func (stubStmt) Exec(args []driver.Value) (driver.Result, error) { return driver.RowsAffected(0), nil }
func (stubStmt) Query(args []driver.Value) (driver.Rows, error)  { return stubRows{}, nil }

type stubRows struct{}

func (stubRows) Columns() []string              { return nil }
func (stubRows) Close() error                   { return nil }
func (stubRows) Next(dest []driver.Value) error { return errors.New("EOF") }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

var sharedStub = &stubDriver{}

func init() {
	sql.Register("stub", sharedStub)
	sql.Register("stubfail", failingDriver{})
}
