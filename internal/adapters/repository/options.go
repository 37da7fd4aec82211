package repository

// Option applies a configuration option to the SessionStore.
type Option func(*SessionStore)

// WithCacheSize bounds the aggregate memo cache. Zero or negative disables
// memoization entirely.
func WithCacheSize(n int) Option {
	return func(s *SessionStore) {
		s.cacheSize = n
	}
}
