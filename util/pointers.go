package util

// ToPtr returns a pointer pointing to a.
// The returned pointer is never nil.
func ToPtr[T any](a T) *T {
	return &a
}
