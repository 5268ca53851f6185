// Package backend implements the driven BackendClient port over HTTP.
//
// It is the sole network boundary of the client: one configured
// http.Client, a fixed base endpoint, JSON in and out (multipart for
// uploads). It performs no retries and no caching; any non-2xx response
// or network failure surfaces as a *domain.TransportError and propagates
// verbatim to the interaction core.
package backend
