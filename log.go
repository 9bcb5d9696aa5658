package own

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	pkgLogger.Store(&nop)
}

// SetLogger replaces the logger used to report disposal failures that have
// no caller to return to, such as a Close error raised while [Ptr.Reset]
// replaces the owned object. The default logger discards everything.
func SetLogger(l zerolog.Logger) {
	pkgLogger.Store(&l)
}

func logger() *zerolog.Logger {
	return pkgLogger.Load()
}

func logDisposeErr[T any](p *T, err error) {
	if err == nil {
		return
	}
	logger().Warn().
		Err(err).
		Str("type", typeName[T]()).
		Str("addr", fmt.Sprintf("%p", p)).
		Msg("default disposal failed")
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
