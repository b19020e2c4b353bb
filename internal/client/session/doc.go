// Package session owns the client's authentication state: the bearer
// credential and the identity it belongs to.
//
// The Store persists the credential in the local metadata table, loads it at
// startup, and revalidates it against GET /user whenever it changes. A
// revalidation failure clears the credential, so the store never holds a
// token without being able to vouch for it. Nothing else in the client reads
// or writes the persisted credential.
//
// The Store is safe for concurrent use. Writes to the credential are
// serialised; reads never block on the network.
package session
