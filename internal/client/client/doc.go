// Package client talks to the Alerta Verde backend and bootstraps the CLI's
// local SQLite database.
//
// HTTPClient.Request is the single entry point for backend calls. It attaches
// the bearer token held by a TokenSource, defaults Content-Type to
// application/json and normalizes every reply into a Response. The typed
// methods (Login, ListCrops, ...) sit on top of it.
//
// Requests are never retried. Transport failures wrap ErrUnavailable;
// non-2xx replies come back as *APIError, which unwraps to ErrUnauthorized
// for 401/403.
package client
