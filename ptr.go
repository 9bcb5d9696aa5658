package own

import "fmt"

// noCopy makes go vet's copylocks check report copies of the structs that
// embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// slot pairs an owned object with the strategy that disposes of it. The two
// are only ever read, written and cleared together.
type slot[T any] struct {
	p *T
	d Deleter[T]
}

func newSlot[T any](p *T, d Deleter[T]) slot[T] {
	if p == nil {
		return slot[T]{}
	}
	return slot[T]{p: p, d: d}
}

// dispose runs the disposal strategy once. Only default disposal can
// report an error.
func (s slot[T]) dispose() error {
	if s.p == nil {
		return nil
	}
	if s.d != nil {
		s.d.Delete(s.p)
		return nil
	}
	return disposeDefault(s.p)
}

func deleterOf[T any](f func(*T)) Deleter[T] {
	if f == nil {
		return nil
	}
	return DeleterFunc[T](f)
}

// Ptr owns a single object of type T and disposes of it exactly once.
//
// The zero value is an empty pointer ready to use. A Ptr must not be copied
// after first use; always pass *Ptr[T] around and transfer ownership with
// [Ptr.Move], [Ptr.Assign], [Ptr.Swap] or [Ptr.Release].
//
// A Ptr is not safe for concurrent use.
type Ptr[T any] struct {
	_ noCopy

	// self is the address the pointer was first used at. A mismatch means
	// the struct was copied by value.
	self *Ptr[T]
	s    slot[T]
}

// New returns a pointer owning p under default disposal. p may be nil.
func New[T any](p *T) *Ptr[T] {
	return adopt(newSlot[T](p, nil))
}

// NewWith returns a pointer owning p that hands it to d for disposal. A nil
// d selects default disposal.
func NewWith[T any](p *T, d Deleter[T]) *Ptr[T] {
	return adopt(newSlot(p, d))
}

// NewFunc is [NewWith] for a plain disposal function.
func NewFunc[T any](p *T, f func(*T)) *Ptr[T] {
	return adopt(newSlot(p, deleterOf(f)))
}

func adopt[T any](s slot[T]) *Ptr[T] {
	p := &Ptr[T]{s: s}
	p.self = p
	return p
}

// check claims p's address on first mutation and panics if p is a copy.
func (p *Ptr[T]) check() {
	if p.self == nil {
		p.self = p
		return
	}
	p.observe()
}

// observe is the read-only half of check. It never writes.
func (p *Ptr[T]) observe() {
	if p.self != nil && p.self != p {
		panic(fmt.Errorf("%w: %s", ErrCopied, typeName[T]()))
	}
}

func (p *Ptr[T]) take() slot[T] {
	s := p.s
	p.s = slot[T]{}
	return s
}

// replace disposes the current content and then adopts s. The pointer is
// already empty while the old content is disposed.
func (p *Ptr[T]) replace(s slot[T]) {
	old := p.take()
	logDisposeErr(old.p, old.dispose())
	p.s = s
}

// Move transfers ownership to a new pointer and leaves p empty. Nothing is
// disposed.
func (p *Ptr[T]) Move() *Ptr[T] {
	p.check()
	return adopt(p.take())
}

// Assign disposes of the object p owns, then takes over the object and
// disposal strategy of src, leaving src empty. Assigning a pointer to
// itself does nothing. A nil src empties p.
func (p *Ptr[T]) Assign(src *Ptr[T]) {
	p.check()
	if p == src {
		return
	}
	if src == nil {
		p.replace(slot[T]{})
		return
	}
	src.check()
	p.replace(src.take())
}

// Reset disposes of the object p owns and adopts x under default disposal.
// Reset(nil) empties the pointer. Resetting to the object already owned
// does nothing.
func (p *Ptr[T]) Reset(x *T) {
	p.check()
	if x != nil && x == p.s.p {
		return
	}
	p.replace(newSlot[T](x, nil))
}

// ResetWith disposes of the object p owns and adopts x with d as its
// disposal strategy. When x is the object already owned, only the strategy
// is replaced and nothing is disposed.
func (p *Ptr[T]) ResetWith(x *T, d Deleter[T]) {
	p.check()
	if x != nil && x == p.s.p {
		p.s = slot[T]{p: x, d: d}
		return
	}
	p.replace(newSlot(x, d))
}

// ResetFunc is [Ptr.ResetWith] for a plain disposal function.
func (p *Ptr[T]) ResetFunc(x *T, f func(*T)) {
	p.ResetWith(x, deleterOf(f))
}

// Release detaches the owned object without disposing of it and returns
// it. p is left empty and the caller becomes responsible for the object.
func (p *Ptr[T]) Release() *T {
	p.check()
	return p.take().p
}

// Swap exchanges the contents of p and other. Nothing is disposed.
// Swapping with itself or with nil does nothing.
func (p *Ptr[T]) Swap(other *Ptr[T]) {
	p.check()
	if p == other || other == nil {
		return
	}
	other.check()
	p.s, other.s = other.s, p.s
}

// Get returns the owned object without giving up ownership, or nil when the
// pointer is empty.
func (p *Ptr[T]) Get() *T {
	if p == nil {
		return nil
	}
	p.observe()
	return p.s.p
}

// Valid reports whether p owns an object.
func (p *Ptr[T]) Valid() bool {
	return p.Get() != nil
}

// Value returns a copy of the owned object. It panics with an error
// wrapping [ErrEmpty] when p is empty.
func (p *Ptr[T]) Value() T {
	v := p.Get()
	if v == nil {
		panic(fmt.Errorf("%w: %s", ErrEmpty, typeName[T]()))
	}
	return *v
}

// Disposal reports how the owned object will be disposed of.
func (p *Ptr[T]) Disposal() Disposal {
	switch {
	case p.Get() == nil:
		return NoDisposal
	case p.s.d != nil:
		return CustomDisposal
	default:
		return DefaultDisposal
	}
}

// Close disposes of the owned object and leaves p empty. Closing an empty
// pointer does nothing.
//
// Under default disposal the error from the object's own Close method is
// returned. Custom strategies never produce an error here.
func (p *Ptr[T]) Close() error {
	if p == nil {
		return nil
	}
	p.check()
	return p.take().dispose()
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Ptr[T]) {
	a.Swap(b)
}
