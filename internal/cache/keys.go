package cache

import "strings"

// GlobalKeyPrefix namespaces every key this application writes, so a
// shared Redis can be swept with a single pattern.
const GlobalKeyPrefix = "mentorloop"

// GenerateCacheKey builds a colon-separated key from the service name,
// object type and identifier. Optional params are joined with "_" and
// appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, params ...string) string {
	parts := []string{GlobalKeyPrefix, serviceName, objectType, identifier}
	if len(params) > 0 {
		parts = append(parts, strings.Join(params, "_"))
	}
	return strings.Join(parts, ":")
}
