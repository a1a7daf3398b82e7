// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as the authorization gate, request logging, CORS,
// tracing, and panic recovery. Each one either answers the
// request itself or calls next and returns what it returns.
package middleware
