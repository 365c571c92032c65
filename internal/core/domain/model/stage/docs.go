// Package stage models the processing pipeline partners report against an order:
// the fine grained Stage vocabulary, its Category and status projection lookup
// tables, and the append-only ProcessingStage timeline entry.
package stage
