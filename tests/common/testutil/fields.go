//go:build unit || e2e

package testutil

// Field mutates one key of a request map: sets it, or deletes it when the
// value is nil. Used to build validation grids from a valid base request.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
