package own

import (
	"fmt"
	"io"
	"reflect"

	"github.com/rs/zerolog"
)

// Deleter is a disposal strategy. A [Ptr] constructed with a Deleter hands
// its object to Delete exactly once, instead of performing default
// disposal. Delete is never called with a nil pointer.
//
// Delete has no way to report failure. A strategy that can fail must deal
// with the failure itself, the same way a Close inside a defer would.
type Deleter[T any] interface {
	Delete(p *T)
}

// DeleterFunc adapts an ordinary function to the [Deleter] interface.
type DeleterFunc[T any] func(p *T)

// Delete calls f(p).
func (f DeleterFunc[T]) Delete(p *T) {
	f(p)
}

// Func wraps a value of any function type whose underlying type is
// func(*T). The value is captured by copy, closures keep whatever state
// they reference.
func Func[T any, F ~func(*T)](f F) Deleter[T] {
	return funcDeleter[T, F]{fn: f}
}

type funcDeleter[T any, F ~func(*T)] struct {
	fn F
}

func (d funcDeleter[T, F]) Delete(p *T) {
	d.fn(p)
}

// Default returns default disposal as an explicit [Deleter]. Supplying it
// behaves like supplying no strategy at all, except that a Close error is
// always logged rather than returned from [Ptr.Close].
func Default[T any]() Deleter[T] {
	return defaultDeleter[T]{}
}

type defaultDeleter[T any] struct{}

func (defaultDeleter[T]) Delete(p *T) {
	logDisposeErr(p, disposeDefault(p))
}

// disposeDefault closes p when either *T or T implements io.Closer. Any
// other value, including a nil T, is simply dropped for the garbage
// collector.
func disposeDefault[T any](p *T) error {
	if p == nil {
		return nil
	}
	if c, ok := any(p).(io.Closer); ok {
		return c.Close()
	}
	if c, ok := any(*p).(io.Closer); ok && !isNil(c) {
		return c.Close()
	}
	return nil
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Logging decorates next so that every disposal is logged at debug level
// before it runs. A nil next falls back to [Default].
func Logging[T any](l zerolog.Logger, next Deleter[T]) Deleter[T] {
	if next == nil {
		next = Default[T]()
	}
	return &loggingDeleter[T]{
		log:  l.With().Str("type", typeName[T]()).Logger(),
		next: next,
	}
}

type loggingDeleter[T any] struct {
	log  zerolog.Logger
	next Deleter[T]
}

func (d *loggingDeleter[T]) Delete(p *T) {
	d.log.Debug().Str("addr", fmt.Sprintf("%p", p)).Msg("disposing")
	d.next.Delete(p)
}
