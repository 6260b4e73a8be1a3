// Package client is the client side of the task-management REST API.
//
// # Overview
//
//  1. Client describes every backend operation; HTTPClient implements it
//     over net/http. Each method is one request: no retries, no caching, no
//     queueing, no deduplication of in-flight calls.
//  2. Authenticated calls read the bearer token through a TokenSource on
//     every request, so logging in or out takes effect immediately.
//  3. InitDatabase and RunMigrations bootstrap the local SQLite database
//     that persists the token between runs.
//
// # Error Handling
//
// A non-2xx response becomes an *APIError carrying the status code, the
// backend's message and the original response. errors.Is(err,
// ErrUnauthorized) matches 401 and 403, errors.Is(err, ErrNotFound) matches
// 404. A request that never got a response returns ErrUnavailable.
// Arguments rejected before any request is sent wrap ErrInvalidArgument.
package client
