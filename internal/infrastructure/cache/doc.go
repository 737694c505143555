// Package cache provides the image byte caches used by the property image
// endpoint: a Redis cache shared between instances and an in-memory cache
// for single-instance deployments and tests.
package cache
