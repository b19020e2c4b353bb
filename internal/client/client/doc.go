// Package client is the HTTP client for the Conduit REST API.
//
// # Overview
//
// Client.Request issues one JSON request against the fixed API base path
// (<base>/api) and either decodes the payload into the caller's value or
// returns a classified failure. Typed helpers (ListArticles, Feed,
// FavoriteArticle, Login, ...) cover every endpoint the application uses.
//
// # Authentication
//
// The bearer credential is read from a CredentialSource at request time. When
// a request is marked authenticated and a credential exists the header
// "Authorization: Token <value>" is attached; otherwise no header is sent.
// WithToken derives a client pinned to an explicit token.
//
// # Error Handling
//
// Failures are *Error values wrapping one of the sentinel kinds, matched with
// errors.Is: ErrUnauthorized, ErrValidation, ErrNotFound, ErrUnavailable,
// ErrUnexpected. Validation failures carry the server's field messages.
//
// The client never retries; callers decide what to do with a failure.
package client
