//go:build kodecdebug

package integer

const Debug = true

func assert(ok bool, format string, args ...interface{}) {
	if !ok {
		panic(Error.New(format, args...))
	}
}
