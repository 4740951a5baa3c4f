// Package graph builds the dependency-respecting deployment plan: it turns
// a flat set of object.CanonicalObject into a directed acyclic graph of
// "must be applied before" edges and assigns each node to a level via
// Kahn's algorithm with a stable (kind, namespace, name) tie-break.
//
// # Core concepts
//
// Graph: a directed acyclic graph over object identities. An edge A → B
// means "A must be applied before B" (A is a dependency of B).
//
// Edge inference: a small table of kind → extractor
// functions (edges.go) derives B's dependencies from its spec tree —
// namespace containment, RoleBinding subjects, service-account mounts,
// ConfigMap/Secret consumption, PVC/StorageClass binding, autoscaler
// targets, and Service→workload selector matching. References to objects
// outside the input set are silently dropped; the target is assumed
// pre-existing.
//
// Levels: Plan assigns each node the smallest level strictly greater than
// the maximum level of its predecessors. A cycle is rejected with a
// CycleError naming one witnessing cycle.
package graph
