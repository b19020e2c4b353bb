// Package cli provides the interactive Conduit command-line client.
//
// It wires configuration, the local session database, the API client, the
// collection synchronizers and the article service, then runs a REPL that
// turns commands into calls on them. Output is driven by the collections:
// every loaded page, comment list or profile is rendered by an OnChange
// observer, so commands only print confirmations.
//
// Key features:
//   - Register / Login / Logout / Settings
//   - Global, personal, tag, author and favorited feeds with paging
//   - Favorites and follows
//   - Reading, writing and deleting articles and comments
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
