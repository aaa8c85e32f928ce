package assert

import "github.com/oomph-ac/ghostplay/oerror"

// IsTrue panics with an internal error if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// InRange panics if v is outside of the inclusive range [lo, hi].
func InRange(v, lo, hi int, what string) {
	if v < lo || v > hi {
		panic(oerror.New("%s out of range: %d not in [%d, %d]", what, v, lo, hi))
	}
}
