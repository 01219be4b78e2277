package database

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shuldan/standalone/pkg/app"
	"github.com/shuldan/standalone/pkg/config"
	"github.com/shuldan/standalone/pkg/contracts"
	"github.com/shuldan/standalone/pkg/logger"
)

func testLogger(t *testing.T) contracts.Logger {
	t.Helper()
	log, err := logger.NewLogger(logger.WithWriter(io.Discard))
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestBind(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{
		"db": map[string]any{
			"default": map[string]any{
				"driver": "stub",
				"url":    "dsn-a",
			},
			"reporting": map[string]any{
				"driver":       "stub",
				"url":          "dsn-b",
				"maxOpenConns": 7,
			},
		},
	})

	inj := app.NewInjector()
	hooks := app.NewHooks()

	p, err := Bind(cfg, inj, hooks, testLogger(t))
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	if _, ok := p.Default(); !ok {
		t.Error("default connection should exist")
	}
	if _, ok := p.Get("reporting"); !ok {
		t.Error("reporting connection should exist")
	}

	resolved, err := app.ResolveAs[contracts.DatabasePool](inj)
	if err != nil {
		t.Fatalf("pool should be resolvable from the injector: %v", err)
	}
	if resolved != p {
		t.Error("injector should hold the bound pool")
	}

	if hooks.Len() != 1 {
		t.Fatalf("Bind should register one close hook, got %d", hooks.Len())
	}
	if err := <-hooks.Drain(context.Background()); err != nil {
		t.Errorf("close hook failed: %v", err)
	}
}

func TestBindMissingSection(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{"app": map[string]any{}})

	_, err := Bind(cfg, app.NewInjector(), app.NewHooks(), testLogger(t))
	if !errors.Is(err, ErrNoConnectionsConfig) {
		t.Errorf("expected ErrNoConnectionsConfig, got %v", err)
	}
}

func TestBindMissingDriver(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{
		"db": map[string]any{
			"default": map[string]any{
				"url": "dsn",
			},
		},
	})

	_, err := Bind(cfg, app.NewInjector(), app.NewHooks(), testLogger(t))
	if !errors.Is(err, ErrMissingDriver) {
		t.Errorf("expected ErrMissingDriver, got %v", err)
	}
}

func TestBindSkipsScalarKeys(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{
		"db": map[string]any{
			"default": map[string]any{
				"driver": "stub",
				"url":    "dsn",
			},
			"comment": "not a connection",
		},
	})

	p, err := Bind(cfg, app.NewInjector(), app.NewHooks(), testLogger(t))
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if len(p.Names()) != 1 {
		t.Errorf("scalar keys must be skipped, got %v", p.Names())
	}
	_ = p.CloseAll()
}
