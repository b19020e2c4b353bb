// Package models defines the Conduit resources the client exchanges with the
// API: users, profiles, articles and comments, plus the payloads used to
// create or change them.
package models
