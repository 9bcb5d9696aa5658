package own

import (
	"errors"
	"reflect"
	"testing"
)

// Shared test types and helpers used across test files.

// recorder is a stateful disposal strategy that remembers every object it
// was handed, in order.
type recorder[T any] struct {
	got []*T
}

func (r *recorder[T]) Delete(p *T) {
	r.got = append(r.got, p)
}

// count returns how many times p was disposed of.
func (r *recorder[T]) count(p *T) int {
	n := 0
	for _, g := range r.got {
		if g == p {
			n++
		}
	}
	return n
}

// testCloser implements io.Closer and counts how often it was closed.
type testCloser struct {
	Name   string
	Closes int
	Err    error
	Order  *[]string // shared slice to record close order
}

func (c *testCloser) Close() error {
	c.Closes++
	if c.Order != nil {
		*c.Order = append(*c.Order, c.Name)
	}
	return c.Err
}

// valueCloser implements io.Closer with a value receiver.
type valueCloser struct {
	closes *int
}

func (v valueCloser) Close() error {
	*v.closes++
	return nil
}

type testPair struct {
	A int
	B int
}

// copyOf duplicates p by value the way an accidental assignment would.
func copyOf[T any](p *Ptr[T]) *Ptr[T] {
	c := reflect.New(reflect.TypeFor[Ptr[T]]())
	c.Elem().Set(reflect.ValueOf(p).Elem())
	return c.Interface().(*Ptr[T])
}

// mustPanicWith calls t.Fatal unless fn panics with an error matching
// target.
func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got: %v", target, r)
		}
	}()
	fn()
}

// mustClose calls t.Fatal if closing fails.
func mustClose[T any](t *testing.T, p *Ptr[T]) {
	t.Helper()
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
