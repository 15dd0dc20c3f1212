package patch

// Coalesce merges one field of a partial update: the pointed-to value when
// the field was sent, the current value otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
