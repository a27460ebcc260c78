// Package mocks provides hand-rolled test doubles for the store
// interfaces. Each mock exposes function fields to override individual
// operations plus a map-backed default implementation.
package mocks
