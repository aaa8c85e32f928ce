package utils

// HasFlag returns whether given flags include the given bitflag.
func HasFlag(flags uint32, flag uint32) bool {
	return flags&(1<<flag) > 0
}

// JustPressed returns true if flag is set in flags but was not set in oldFlags.
func JustPressed(oldFlags, flags uint32, flag uint32) bool {
	return HasFlag(flags, flag) && !HasFlag(oldFlags, flag)
}

// WithFlags returns a bitmask with every given bitflag set.
func WithFlags(flags ...uint32) uint32 {
	var mask uint32
	for _, f := range flags {
		mask |= 1 << f
	}
	return mask
}
