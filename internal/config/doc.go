// Package config defines the application configuration and loads it from
// defaults, an optional config file, and environment variables.
package config
