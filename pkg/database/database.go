package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/shuldan/standalone/pkg/contracts"
)

// settings tune one connection; the Bind layer fills them from the
// db.<name>.* configuration keys.
type settings struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
	maxIdleTime time.Duration
	pingTimeout time.Duration
	retries     int
	retryDelay  time.Duration
}

func defaultSettings() settings {
	return settings{
		maxOpen:     25,
		maxIdle:     5,
		maxLifetime: time.Hour,
		maxIdleTime: 5 * time.Minute,
		pingTimeout: 5 * time.Second,
		retries:     3,
		retryDelay:  time.Second,
	}
}

func (s settings) tune(db *sql.DB) {
	db.SetMaxOpenConns(s.maxOpen)
	db.SetMaxIdleConns(s.maxIdle)
	db.SetConnMaxLifetime(s.maxLifetime)
	db.SetConnMaxIdleTime(s.maxIdleTime)
}

type Option func(*settings)

func WithConnectionPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(s *settings) {
		s.maxOpen = maxOpen
		s.maxIdle = maxIdle
		s.maxLifetime = maxLifetime
	}
}

func WithConnectionIdleTime(idleTime time.Duration) Option {
	return func(s *settings) {
		s.maxIdleTime = idleTime
	}
}

func WithPingTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.pingTimeout = timeout
	}
}

// WithRetry allows attempts additional connect tries after the first, spaced
// by delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(s *settings) {
		s.retries = attempts
		s.retryDelay = delay
	}
}

type sqlDatabase struct {
	db       *sql.DB
	driver   string
	dsn      string
	settings settings
}

func New(driver, dsn string, options ...Option) contracts.Database {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	return &sqlDatabase{
		driver:   driver,
		dsn:      dsn,
		settings: s,
	}
}

// Connect opens and pings the connection, retrying per the settings. Calling
// Connect on an open connection is a no-op.
func (d *sqlDatabase) Connect() error {
	if d.db != nil {
		return nil
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		db, err := d.open()
		if err == nil {
			d.db = db
			return nil
		}
		lastErr = err
		if attempt >= d.settings.retries {
			break
		}
		time.Sleep(d.settings.retryDelay)
	}

	return ErrFailedToOpenDatabase.WithCause(lastErr)
}

func (d *sqlDatabase) open() (*sql.DB, error) {
	db, err := sql.Open(d.driver, d.dsn)
	if err != nil {
		return nil, err
	}
	d.settings.tune(db)

	ctx, cancel := context.WithTimeout(context.Background(), d.settings.pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (d *sqlDatabase) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

func (d *sqlDatabase) Ping(ctx context.Context) error {
	if d.db == nil {
		return ErrDatabaseNotConnected
	}
	return d.db.PingContext(ctx)
}

func (d *sqlDatabase) BeginTx(ctx context.Context) (contracts.Transaction, error) {
	if d.db == nil {
		return nil, ErrDatabaseNotConnected
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, ErrTransactionFailed.
			WithDetail("reason", "failed to begin").
			WithCause(err)
	}
	return &sqlTransaction{tx: tx}, nil
}

// DB exposes the raw handle for the access layer built on top.
func (d *sqlDatabase) DB() *sql.DB {
	return d.db
}

type sqlTransaction struct {
	tx *sql.Tx
}

func (t *sqlTransaction) Commit() error {
	return t.tx.Commit()
}

func (t *sqlTransaction) Rollback() error {
	return t.tx.Rollback()
}
