// Package timezone centralizes time handling for the service. Presentation
// timestamps are rendered in the configured application timezone, while
// booking availability math is always anchored to midnight UTC.
package timezone
