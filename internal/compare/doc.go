// Package compare implements the semantic diff between a live cluster
// object and the desired object: does the live object already satisfy the
// desired spec? It classifies every path in the merged tree as Equal,
// Ignored, Defaulted or Differing, operating on the parsed object.Node
// trees rather than on serialized text, so reordering or server-injected
// fields don't register as spurious differences.
//
// The ignored-path set, the default-value table and the set-valued
// sequence table (metadata.finalizers, env lists, RBAC subjects/rules) are
// kept as plain data in rules.go rather than encoded as branches in the
// comparator, so they can grow per cluster version without touching the
// traversal logic.
package compare
