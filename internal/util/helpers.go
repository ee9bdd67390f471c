package util

// BoolToInt maps a flag to its 0/1 settings encoding.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IntToBool decodes the 0/1 settings encoding; any non-zero reads as true.
func IntToBool(i int) bool {
	return i != 0
}

// Ptr returns a pointer to the value, for optional database columns.
func Ptr[T any](v T) *T {
	return &v
}

// Deref dereferences a pointer, returning the zero value when nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Clamp constrains value to [min, max].
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
