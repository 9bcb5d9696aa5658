// Package own provides a single-ownership smart pointer for Go.
//
// A [Ptr] owns exactly one heap object and guarantees that the object is
// disposed exactly once, no matter how ownership moves around before the
// owner is closed. Disposal is pluggable: pass a [Deleter] (or a plain
// function) when constructing the pointer, or rely on default disposal,
// which closes values implementing [io.Closer] and otherwise leaves the
// memory to the garbage collector.
//
// # Quick Start
//
//	db := own.New(openDB())
//	defer db.Close()
//
//	conn := own.NewFunc(dial(), func(c *Conn) { c.Hangup() })
//	defer conn.Close()
//
// # Ownership Transfer
//
// A Ptr must not be copied. Ownership moves only through [Ptr.Move],
// [Ptr.Assign], [Ptr.Swap] and [Ptr.Release]:
//
//	a := own.Make[Config]()
//	b := a.Move()      // a is now empty
//	raw := b.Release() // b is empty, the caller owns raw
//
// Copies are reported by go vet's copylocks check. A pointer copied after
// its first use panics with [ErrCopied] as soon as the copy is touched.
//
// # Comparisons
//
// [Equal], [Less] and the other comparison helpers order pointers by the
// address of the owned object, never by its value. Empty pointers compare
// as the nil address.
//
// # Groups
//
// A [Group] owns many pointers and disposes them in reverse adoption order:
//
//	g := own.NewGroup(own.WithName("session"))
//	cache, _ := own.Adopt(g, own.New(newCache()))
//	defer g.Close(ctx)
//
// # Concurrency
//
// A Ptr is not safe for concurrent mutation. Exactly one goroutine may own
// and mutate it at a time. A Group serializes its own bookkeeping.
package own
