// Package catalog persists disc collections and their items in SQLite.
//
// The scan pipeline itself never writes here; it returns a search result and
// the CLI turns the user's confirmed pick into a catalog entry. Writes follow
// a write-then-re-read pattern so callers always see the stored row.
package catalog
