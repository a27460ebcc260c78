// Package service provides the application-level user service. Every
// operation returns a Result carrying either a DTO payload or a typed
// Error whose code classifies the failure; the API layer reuses that
// code as the HTTP status.
package service
