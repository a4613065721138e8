// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// RoutineCachePrefix is the prefix for cached routine documents.
const RoutineCachePrefix = "routine:"

// RoutineCacheTTL is the time-to-live for cached routine documents.
const RoutineCacheTTL = 10 * time.Minute
