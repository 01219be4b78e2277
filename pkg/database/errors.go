package database

import "github.com/shuldan/standalone/pkg/errors"

var newDatabaseCode = errors.WithPrefix("DATABASE")

var (
	ErrFailedToOpenDatabase = newDatabaseCode().New("failed to open database {{.name}}")
	ErrDatabaseNotConnected = newDatabaseCode().New("database not connected")
	ErrRegisterConnection   = newDatabaseCode().New("failed to register connection {{.name}}: {{.reason}}")
	ErrMultipleOpenErrors   = newDatabaseCode().New("failed to open one or more databases")
	ErrCloseDatabase        = newDatabaseCode().New("failed to close database {{.name}}")
	ErrMultipleCloseErrors  = newDatabaseCode().New("failed to close one or more databases")
	ErrMissingDriver        = newDatabaseCode().New("connection {{.name}} has no driver configured")
	ErrNoConnectionsConfig  = newDatabaseCode().New("no {{.section}} section in configuration")
	ErrTransactionFailed    = newDatabaseCode().New("transaction failed: {{.reason}}")
	ErrInvalidID            = newDatabaseCode().New("invalid ID: {{.id}}")
)
