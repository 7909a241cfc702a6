package repository

// CacheRepository caches serialized schedule results keyed by their request.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
