package own

// Disposal reports how a [Ptr] will dispose of the object it owns.
type Disposal int

const (
	// NoDisposal means the pointer is empty; closing it does nothing.
	NoDisposal Disposal = iota

	// DefaultDisposal means no [Deleter] was supplied. The owned object is
	// closed if it implements [io.Closer] and is otherwise left to the
	// garbage collector.
	DefaultDisposal

	// CustomDisposal means a caller-supplied [Deleter] will receive the
	// owned object.
	CustomDisposal
)

// String returns the human-readable name of the disposal kind.
func (d Disposal) String() string {
	switch d {
	case NoDisposal:
		return "none"
	case DefaultDisposal:
		return "default"
	case CustomDisposal:
		return "custom"
	default:
		return "unknown"
	}
}
