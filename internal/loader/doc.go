// Package loader builds the set of object.CanonicalObject the graph
// resolver and planner operate on. A Source produces CanonicalObjects from
// one place (a directory tree, a pre-built slice); Load merges one or more
// Sources and rejects the set if two objects collide on Identity, so a
// duplicate is reported against the input rather than surfacing later as a
// confusing graph or plan error.
package loader
