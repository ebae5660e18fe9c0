package dict

// GetDefault returns the value stored under k, creating and storing it
// with c if it is absent.
func GetDefault[K comparable, V any](m map[K]V, k K, c func() V) V {
	v, ok := m[k]
	if !ok {
		v = c()
		m[k] = v
	}
	return v
}
