// Package object defines piceli's canonical representation of a Kubernetes
// object: a source-independent identity tuple plus a spec tree that every
// downstream component (graph, compare, plan, executor, journal) reads but
// never mutates.
//
// The spec tree is a tagged sum (Scalar | Seq | Map) rather than an
// interface hierarchy, per the tree shape every loader in this repository
// produces: JSON/YAML decode into nested maps, slices and scalars, and the
// comparator wants to switch on a Kind field instead of doing repeated type
// assertions.
package object
