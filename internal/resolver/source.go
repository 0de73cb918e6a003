package resolver

// Source exposes configuration values by key. Implementations must be safe to
// read concurrently and must not change while a resolution is in progress.
type Source interface {
	Lookup(key string) (string, bool)
}

// Map is an in-memory configuration snapshot. A nil Map has every key absent.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Value returns the value stored under key, or "" when the key is absent or
// src is nil.
func Value(src Source, key string) string {
	if src == nil {
		return ""
	}
	v, _ := src.Lookup(key)
	return v
}

// BucketName returns the configured R2 bucket or DefaultBucketName.
func BucketName(src Source) string {
	if v := Value(src, KeyR2BucketName); v != "" {
		return v
	}
	return DefaultBucketName
}
