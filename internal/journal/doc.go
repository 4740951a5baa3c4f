// Package journal implements the rollback journal (spec.md §4.6): an
// append-only, in-memory ordered log of pre-images captured immediately
// before each mutation, replayed in reverse on deploy abort.
//
// Appends are serialized by a single mutex, per spec.md §5 ("the Journal
// is the only shared mutable structure"); apart from that mutex, the only
// blocking in this package is the transport calls Replay makes.
package journal
