// Package rule pairs a Pattern with an optional one-shot origin seed and
// a symmetry selector, and knows how to apply itself against a single
// already-searched list of Match candidates.
package rule
