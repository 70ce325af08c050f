// Package tmdb provides the minimal TMDB API client used to resolve scanned
// cover titles into catalog metadata.
//
// It authenticates requests and exposes paginated multi search across movies
// and TV plus per-title detail retrieval. Responses are strongly typed so the
// matching stage can score them. Options allow tests to supply custom HTTP
// clients without modifying production code.
package tmdb
