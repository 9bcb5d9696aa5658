package own

import (
	"cmp"
	"unsafe"
)

// addr returns the address of the owned object, 0 for an empty or nil
// pointer. It deliberately skips the copy check so that comparisons stay
// free of side effects.
func addr[T any](p *Ptr[T]) uintptr {
	if p == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(p.s.p))
}

// Compare orders two pointers by the address of the objects they own,
// returning -1, 0 or +1. The owned values themselves are never inspected.
// Empty pointers order before every non-empty one and equal each other.
func Compare[T1, T2 any](x *Ptr[T1], y *Ptr[T2]) int {
	return cmp.Compare(addr(x), addr(y))
}

// Equal reports whether x and y own the same address.
func Equal[T1, T2 any](x *Ptr[T1], y *Ptr[T2]) bool {
	return Compare(x, y) == 0
}

// NotEqual reports whether x and y own different addresses.
func NotEqual[T1, T2 any](x *Ptr[T1], y *Ptr[T2]) bool {
	return Compare(x, y) != 0
}

// Less reports whether x's address orders before y's.
func Less[T1, T2 any](x *Ptr[T1], y *Ptr[T2]) bool {
	return Compare(x, y) < 0
}

// LessEqual reports whether x's address orders before or equal to y's.
func LessEqual[T1, T2 any](x *Ptr[T1], y *Ptr[T2]) bool {
	return Compare(x, y) <= 0
}

// Greater reports whether x's address orders after y's.
func Greater[T1, T2 any](x *Ptr[T1], y *Ptr[T2]) bool {
	return Compare(x, y) > 0
}

// GreaterEqual reports whether x's address orders after or equal to y's.
func GreaterEqual[T1, T2 any](x *Ptr[T1], y *Ptr[T2]) bool {
	return Compare(x, y) >= 0
}
