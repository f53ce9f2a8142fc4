//go:build !kodecdebug

package integer

// Debug reports whether internal consistency checks are enabled. Build with
// the kodecdebug tag to turn them on.
const Debug = false

func assert(bool, string, ...interface{}) {}
