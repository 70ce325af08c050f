// Package scan implements the cover-scan pipeline: enhance the photographed
// disc cover, run OCR, rebuild reading order, score text fragments for the
// most likely title, normalize it into a search query, and resolve it against
// TMDB with a confidence-gated auto-match.
//
// Each scan is an independent request/response sequence. A generation counter
// guards against a stale in-flight scan overwriting the outcome of a newer
// one after the user retries with a fresh image.
package scan
