// Package collection keeps a locally held page of remote items in step with
// the server.
//
// A Synchronizer owns one page: the filter and page number that selected it,
// the items, the total count and a load status. Changing the filter or the
// page refetches; a fetch that was superseded while in flight is discarded
// when it resolves. Single-item mutations (favorite, follow, comment) are
// applied only after the server confirms them, and then patch the page in
// place without a refetch.
//
// Feed, Comments and ProfileView are the concrete collections the terminal
// client shows.
package collection
