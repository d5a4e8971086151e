package cache

import "strings"

const (
	GlobalKeyPrefix = "kidsedu"

	VocabularyService = "vocabulary"
	ItemsObject       = "items"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// LabeledItemsKey holds the cached snapshot of labeled vocabulary items.
func LabeledItemsKey() string {
	return GenerateCacheKey(VocabularyService, ItemsObject, "labeled")
}

// AllItemsKey holds the cached listing of every vocabulary item.
func AllItemsKey() string {
	return GenerateCacheKey(VocabularyService, ItemsObject, "all")
}
