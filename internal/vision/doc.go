// Package vision wraps the Google Cloud Vision text-detection endpoint used
// to read disc covers.
//
// The client normalizes the engine response into a full-page transcription
// plus per-fragment annotations with bounding geometry, and maps upstream
// failures onto the shared error taxonomy (configuration, rate limit,
// no-text, external service). It performs exactly one network call per
// extraction and never retries.
package vision
