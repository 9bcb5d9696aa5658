package own

import "fmt"

// Make allocates a zero-valued T and returns a pointer owning it under
// default disposal.
func Make[T any]() *Ptr[T] {
	return New(new(T))
}

// From copies v to the heap and returns a pointer owning the copy under
// default disposal.
//
//	cfg := own.From(Config{Addr: ":8080"})
func From[T any](v T) *Ptr[T] {
	return New(&v)
}

// MakeFunc calls ctor and returns a pointer owning its result under
// default disposal. A constructor error is returned wrapped and no pointer
// is created:
//
//	conn, err := own.MakeFunc(func() (*Conn, error) { return Dial(addr) })
func MakeFunc[T any](ctor func() (*T, error)) (*Ptr[T], error) {
	v, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("constructing %s: %w", typeName[T](), err)
	}
	return New(v), nil
}
