// Package services defines the shared error taxonomy consumed by the scan
// pipeline and the external service clients.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent between the vision adapter, the title search
//     client, and the pipeline itself.
//   - Retryability classification and user-facing guidance so the CLI can
//     tell the difference between "fix your API key" and "take a clearer
//     photo" without string matching.
//
// Use these helpers when wiring new collaborators so operational behaviour
// (error handling, observability, retry guidance) stays uniform across the
// pipeline.
package services
