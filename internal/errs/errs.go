// Package errs defines the error types handlers and middleware return.
//
// Handlers never write error responses themselves: they return an
// *HTTPError (or any other error) and the global error handler renders it.
// Anything that is not an *HTTPError becomes a generic 500.
package errs
