// Package cache provides a file-backed key-value cache with TTL, used to
// publish the last run summary for operator display.
package cache
