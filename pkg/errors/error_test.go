package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCodePrefix(t *testing.T) {
	next := WithPrefix("TEST")
	first := next()
	second := next()

	if first != "TEST_0001" {
		t.Errorf("expected TEST_0001, got %s", first)
	}
	if second != "TEST_0002" {
		t.Errorf("expected TEST_0002, got %s", second)
	}
}

func TestErrorTemplateRendering(t *testing.T) {
	base := Code("X_0001").New("thing {{.name}} broke")

	err := base.WithDetail("name", "pump")
	if !strings.Contains(err.Error(), "pump") {
		t.Errorf("expected detail in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "X_0001") {
		t.Errorf("expected code in message, got %q", err.Error())
	}
}

func TestErrorImmutableDeclarations(t *testing.T) {
	base := Code("X_0002").New("base {{.k}}")

	_ = base.WithDetail("k", "v")
	if len(base.Details) != 0 {
		t.Error("WithDetail must not mutate the declaration")
	}

	_ = base.WithCause(errors.New("boom"))
	if base.Cause != nil {
		t.Error("WithCause must not mutate the declaration")
	}
}

func TestErrorIsByCode(t *testing.T) {
	base := Code("X_0003").New("broken")
	derived := base.WithDetail("extra", 1).WithCause(errors.New("io"))

	if !errors.Is(derived, base) {
		t.Error("detail-carrying copy should match its declaration")
	}
	if errors.Is(derived, Code("X_0004").New("other")) {
		t.Error("distinct codes must not match")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := Code("X_0005").New("wrapper").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}
	if fmt.Sprintf("%v", errors.Unwrap(err)) != "root" {
		t.Error("Unwrap should return the cause")
	}
}

func TestCodeOf(t *testing.T) {
	err := Code("X_0006").New("x")
	if CodeOf(err) != "X_0006" {
		t.Errorf("unexpected code %s", CodeOf(err))
	}
	if CodeOf(Code("X_0007").New("outer").WithCause(err)) != "X_0007" {
		t.Error("the nearest coded error should win")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("plain errors carry no code")
	}
}
