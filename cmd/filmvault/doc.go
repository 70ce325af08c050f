// Command filmvault is the disc-collection CLI: scan a photographed cover to
// identify the title, search TMDB directly, and manage collections stored in
// a local SQLite catalog.
package main
