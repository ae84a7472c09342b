package redis

const (
	// DefaultKeyPrefix namespaces every key written by the store
	DefaultKeyPrefix = "bookmarks:"

	keyBookmark = "bookmark:"
	keyOrder    = "order"
)

// BookmarkKey returns the Redis key holding the JSON encoded bookmark
func (s *Store) BookmarkKey(id string) string {
	return s.prefix + keyBookmark + id
}

// OrderKey returns the Redis key of the list keeping insertion order
func (s *Store) OrderKey() string {
	return s.prefix + keyOrder
}
