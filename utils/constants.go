// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis admin lookup cache keys.
const AuthCachePrefix = "auth:admin:"

// AuthCacheTTL is the time-to-live for admin lookup cache entries.
const AuthCacheTTL = 10 * time.Minute

// RevokedTokenPrefix marks logged-out bearer tokens by hash.
const RevokedTokenPrefix = "auth:revoked:"
