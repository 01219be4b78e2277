package database

import (
	"errors"
	"testing"
	"time"
)

func TestPoolRegisterAndGet(t *testing.T) {
	p := NewPool("default")

	if err := p.Register("default", New("stub", "a")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := p.Register("analytics", New("stub", "b")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := p.Register("default", New("stub", "c")); !errors.Is(err, ErrRegisterConnection) {
		t.Errorf("expected ErrRegisterConnection, got %v", err)
	}

	if _, ok := p.Get("analytics"); !ok {
		t.Error("registered connection should be found")
	}
	if _, ok := p.Get("missing"); ok {
		t.Error("unknown connection should be absent")
	}
	if _, ok := p.Default(); !ok {
		t.Error("default connection should be found")
	}

	names := p.Names()
	if len(names) != 2 || names[0] != "analytics" || names[1] != "default" {
		t.Errorf("Names = %v", names)
	}
}

func TestPoolConnectAll(t *testing.T) {
	p := NewPool("")
	_ = p.Register("ok", New("stub", "a"))

	if err := p.ConnectAll(); err != nil {
		t.Fatalf("ConnectAll failed: %v", err)
	}
	defer func() { _ = p.CloseAll() }()

	db, _ := p.Get("ok")
	if db.DB() == nil {
		t.Error("connection should be open after ConnectAll")
	}
}

func TestPoolConnectAllAggregatesFailures(t *testing.T) {
	p := NewPool("")
	_ = p.Register("ok", New("stub", "a"))
	_ = p.Register("bad", New("stubfail", "b", WithRetry(0, time.Millisecond)))

	err := p.ConnectAll()
	if !errors.Is(err, ErrMultipleOpenErrors) {
		t.Fatalf("expected ErrMultipleOpenErrors, got %v", err)
	}
	if !errors.Is(err, ErrFailedToOpenDatabase) {
		t.Error("the per-connection failure should be joined in")
	}
	_ = p.CloseAll()
}

func TestPoolCloseAll(t *testing.T) {
	p := NewPool("")
	_ = p.Register("a", New("stub", "a"))
	_ = p.Register("b", New("stub", "b"))
	if err := p.ConnectAll(); err != nil {
		t.Fatalf("ConnectAll failed: %v", err)
	}

	if err := p.CloseAll(); err != nil {
		t.Errorf("CloseAll failed: %v", err)
	}
}
