package database

import (
	"context"
	"time"

	"github.com/shuldan/standalone/pkg/app"
	"github.com/shuldan/standalone/pkg/contracts"
)

// ConfigSection is the subtree holding named connections, Play-style:
// db.default.driver, db.default.url, db.analytics.driver, ...
const ConfigSection = "db"

// Bind builds named connections from the configuration's db subtree, opens
// them, publishes the pool in the injector, and registers a hook closing
// every connection when the application stops.
func Bind(cfg contracts.Config, inj contracts.Injector, hooks *app.Hooks, log contracts.Logger) (contracts.DatabasePool, error) {
	section, ok := cfg.GetSub(ConfigSection)
	if !ok {
		return nil, ErrNoConnectionsConfig.WithDetail("section", ConfigSection)
	}

	p := NewPool("default")

	for name, raw := range section.All() {
		if _, ok := raw.(map[string]any); !ok {
			continue
		}
		conn, _ := section.GetSub(name)

		driver := conn.GetString("driver")
		if driver == "" {
			return nil, ErrMissingDriver.WithDetail("name", name)
		}
		dsn := conn.GetString("url")

		db := New(driver, dsn, connectionOptions(conn)...)
		if err := p.Register(name, db); err != nil {
			return nil, err
		}
	}

	if err := p.ConnectAll(); err != nil {
		return nil, err
	}
	log.Debug("database connections opened", "names", p.Names())

	if err := app.RegisterInstance[contracts.DatabasePool](inj, p); err != nil {
		return nil, err
	}

	hooks.Register("database.close", func(ctx context.Context) error {
		return p.CloseAll()
	})

	return p, nil
}

func connectionOptions(conn contracts.Config) []Option {
	var opts []Option

	maxOpen := conn.GetInt("maxOpenConns", 25)
	maxIdle := conn.GetInt("maxIdleConns", 5)
	lifetime := durationKey(conn, "connMaxLifetime", time.Hour)
	opts = append(opts, WithConnectionPool(maxOpen, maxIdle, lifetime))

	if conn.Has("connMaxIdleTime") {
		opts = append(opts, WithConnectionIdleTime(durationKey(conn, "connMaxIdleTime", 5*time.Minute)))
	}
	if conn.Has("pingTimeout") {
		opts = append(opts, WithPingTimeout(durationKey(conn, "pingTimeout", 5*time.Second)))
	}
	if conn.Has("retryAttempts") {
		opts = append(opts, WithRetry(
			conn.GetInt("retryAttempts", 3),
			durationKey(conn, "retryDelay", time.Second),
		))
	}

	return opts
}

func durationKey(cfg contracts.Config, key string, fallback time.Duration) time.Duration {
	raw := cfg.GetString(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
