package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrImageDecode marks a malformed input image. Fatal to the scan; the
	// user must retry with a new image.
	ErrImageDecode = errors.New("image decode error")
	// ErrConfiguration marks missing or invalid API credentials. Requires an
	// operator fix and is never retryable as-is.
	ErrConfiguration = errors.New("configuration error")
	// ErrRateLimited marks upstream throttling. Retryable after a delay; the
	// pipeline never retries internally.
	ErrRateLimited = errors.New("rate limited")
	// ErrExternalService marks any other upstream failure.
	ErrExternalService = errors.New("external service error")
	// ErrNoText marks an OCR response with nothing usable in it.
	ErrNoText = errors.New("no text found")
	// ErrTitleNotDetected marks a scan where OCR succeeded but no plausible
	// title survived scoring and fallback.
	ErrTitleNotDetected = errors.New("title not detected")
	// ErrNoMatch marks a successful scan whose search returned zero results.
	ErrNoMatch = errors.New("no match found")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalService
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Retryable reports whether the user can reasonably retry the same scan
// without an operator fixing anything first.
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrConfiguration):
		return false
	default:
		return true
	}
}

// UserMessage maps a pipeline error to actionable guidance for the person
// holding the disc.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrImageDecode):
		return "The image could not be read. Retry with a different photo."
	case errors.Is(err, ErrConfiguration):
		return "API credentials are missing or invalid. Fix the configuration before scanning again."
	case errors.Is(err, ErrRateLimited):
		return "The service is throttling requests. Wait a moment and retry."
	case errors.Is(err, ErrNoText):
		return "No readable text was found. Retry with a clearer, better-lit photo."
	case errors.Is(err, ErrTitleNotDetected):
		return "No title could be picked out of the cover. Retry with a clearer photo or search manually."
	case errors.Is(err, ErrNoMatch):
		return "Nothing matched the detected title. Retry or search manually."
	default:
		return "The scan failed upstream. Retry in a moment."
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
