// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis staff verdict keys.
const AuthCachePrefix = "staff-verdict:"

// HealthCheckInterval is how often the health monitor pings its dependencies.
const HealthCheckInterval = 30 * time.Second
