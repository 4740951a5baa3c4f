// Package transport implements the cluster-operations interface the level
// executor consumes (spec.md §6): Get, Create, Patch, Replace, Delete
// against a live Kubernetes API server.
//
// The concrete implementation in kubernetes.go uses
// sigs.k8s.io/controller-runtime's client.Client for Get/Create/Delete
// (all operate on unstructured.Unstructured, so no scheme registration is
// needed per kind) and k8s.io/client-go's dynamic client for Patch, whose
// GVR is resolved from the object's GVK via a cached discovery REST
// mapper. Replace is delete-then-create, matching spec.md §4.4's REPLACE
// definition verbatim rather than a PUT.
package transport
