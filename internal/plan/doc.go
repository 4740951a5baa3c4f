// Package plan implements the reconciliation planner: given the
// comparator's verdict for one object, it chooses CREATE, PATCH, REPLACE
// or NO_ACTION per SPEC_FULL.md §4.4, and builds the merge-patch body for
// PATCH decisions using github.com/evanphx/json-patch/v5.
//
// Kind-specific immutability (Job, PersistentVolume and StorageClass
// wholesale; a Service's selector and clusterIP) is a data table in
// immutability.go, not a branch in Decide, per the "keep it as data"
// design note in spec.md §9.
package plan
