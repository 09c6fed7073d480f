package utils

// Ptr returns a pointer to v. Handy for option structs that take
// pointers to distinguish "unset" from a zero value.
func Ptr[T any](v T) *T {
	return &v
}
