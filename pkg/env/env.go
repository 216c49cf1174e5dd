// Package env reads the handful of process variables consulted before the
// typed configuration is loaded, such as the log format used while the
// logger bootstraps.
package env

import "os"

// Get returns the named variable, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
