package errors

import (
	"bytes"
	"fmt"
	"maps"
	"runtime"
	"text/template"
	"time"
)

type Code string

func (c Code) New(msg string) *Error {
	return &Error{
		Code:      c,
		Message:   msg,
		Details:   make(map[string]any),
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

// WithPrefix returns a generator of sequential codes under one prefix, e.g.
// APP_0001, APP_0002. Each package owns a prefix and declares its errors once
// at init time.
func WithPrefix(prefix string) func() Code {
	counter := int64(0)
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

type Error struct {
	Code      Code           `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Cause     error          `json:"-"`
	Stack     string         `json:"-"`
	Timestamp time.Time      `json:"timestamp"`
}

func (e *Error) Error() string {
	t, err := template.New("error").Parse(e.Message)
	if err != nil {
		return e.plainMessage()
	}

	var rendered bytes.Buffer
	if err = t.Execute(&rendered, e.Details); err != nil {
		return e.plainMessage()
	}

	msg := rendered.String()
	if msg == "" {
		return ""
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) plainMessage() string {
	if e.Message == "" {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetail returns a copy carrying an extra template value. Package-level
// error declarations stay immutable.
func (e *Error) WithDetail(key string, value any) *Error {
	c := e.clone()
	c.Details[key] = value
	return c
}

func (e *Error) WithCause(err error) *Error {
	c := e.clone()
	c.Cause = err
	return c
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches by code, so detail-carrying copies still satisfy
// errors.Is(err, ErrSomething).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *Error) clone() *Error {
	details := make(map[string]any, len(e.Details)+1)
	maps.Copy(details, e.Details)
	return &Error{
		Code:      e.Code,
		Message:   e.Message,
		Details:   details,
		Cause:     e.Cause,
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

func getStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
