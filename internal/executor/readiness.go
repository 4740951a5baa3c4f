package executor

import (
	"github.com/giantswarm/piceli/internal/object"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/cli-utils/pkg/kstatus/status"
)

// Outcome is a readiness poll's verdict for one object.
type Outcome int

const (
	NotReady Outcome = iota
	Ready
	ReadinessFailed
)

// ReadinessFunc inspects the live object's full tree (as read back from
// the transport) and reports whether it has converged, is still
// progressing, or has failed outright.
type ReadinessFunc func(full object.Node) (Outcome, string)

// readinessByKind holds the bespoke rules spec.md §4.5 step 3 names.
// Kinds absent from this table fall back to kstatusReadiness.
var readinessByKind = map[string]ReadinessFunc{
	"Deployment":  deploymentReadiness,
	"StatefulSet": statefulSetReadiness,
	"Job":         jobReadiness,
	"Namespace":   namespaceReadiness,
}

// readinessFor returns the ReadinessFunc for kind, generalizing spec.md's
// "others: apply-acknowledged counts as ready" into "others:
// kstatus-derived readiness when computable, else apply-acknowledged."
func readinessFor(kind string) ReadinessFunc {
	if f, ok := readinessByKind[kind]; ok {
		return f
	}
	return kstatusReadiness
}

func deploymentReadiness(full object.Node) (Outcome, string) {
	replicas := specInt64(full, "replicas", 1)
	readyReplicas := statusInt64(full, "readyReplicas", 0)
	generation := metaInt64(full, "generation", 0)
	observedGeneration := statusInt64(full, "observedGeneration", -1)

	if readyReplicas >= replicas && observedGeneration >= generation {
		return Ready, ""
	}
	return NotReady, "waiting for readyReplicas to reach spec.replicas"
}

func statefulSetReadiness(full object.Node) (Outcome, string) {
	replicas := specInt64(full, "replicas", 1)
	readyReplicas := statusInt64(full, "readyReplicas", 0)
	generation := metaInt64(full, "generation", 0)
	observedGeneration := statusInt64(full, "observedGeneration", -1)

	if readyReplicas >= replicas && observedGeneration >= generation {
		return Ready, ""
	}
	return NotReady, "waiting for readyReplicas to reach spec.replicas"
}

func jobReadiness(full object.Node) (Outcome, string) {
	if succeeded := statusInt64(full, "succeeded", 0); succeeded >= 1 {
		return Ready, ""
	}
	if failed := statusInt64(full, "failed", 0); failed >= 1 {
		return ReadinessFailed, "job reported failed pods"
	}
	return NotReady, "waiting for job to succeed"
}

func namespaceReadiness(full object.Node) (Outcome, string) {
	statusNode, _ := full.Path("status", "phase")
	phase, _ := statusNode.AsString()
	if phase == "Active" {
		return Ready, ""
	}
	return NotReady, "waiting for namespace to become Active"
}

// kstatusReadiness handles every kind without a bespoke rule by asking
// sigs.k8s.io/cli-utils' generic status computation, which understands
// the common status.conditions shape most CRDs and built-ins share. When
// it can't compute a verdict (the object's shape doesn't fit its
// heuristics), the apply itself having been acknowledged is treated as
// readiness, per spec.md's fallback rule.
func kstatusReadiness(full object.Node) (Outcome, string) {
	content, ok := full.ToInterface().(map[string]interface{})
	if !ok {
		return Ready, ""
	}
	result, err := status.Compute(&unstructured.Unstructured{Object: content})
	if err != nil {
		return Ready, ""
	}

	switch result.Status {
	case status.CurrentStatus:
		return Ready, ""
	case status.FailedStatus:
		return ReadinessFailed, result.Message
	case status.NotFoundStatus:
		return ReadinessFailed, "object not found during readiness poll"
	default:
		return NotReady, result.Message
	}
}

func specInt64(full object.Node, key string, fallback int64) int64 {
	n, ok := full.Path("spec", key)
	if !ok {
		return fallback
	}
	v, ok := n.AsInt64()
	if !ok {
		return fallback
	}
	return v
}

func statusInt64(full object.Node, key string, fallback int64) int64 {
	n, ok := full.Path("status", key)
	if !ok {
		return fallback
	}
	v, ok := n.AsInt64()
	if !ok {
		return fallback
	}
	return v
}

func metaInt64(full object.Node, key string, fallback int64) int64 {
	n, ok := full.Path("metadata", key)
	if !ok {
		return fallback
	}
	v, ok := n.AsInt64()
	if !ok {
		return fallback
	}
	return v
}
