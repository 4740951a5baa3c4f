package object

// Kind-specific conveniences over the spec tree. These are pure functions:
// given a spec Node they return plain Go values and never mutate the tree.
// internal/graph's edge extractors build on the same Path/Get primitives
// for reference discovery; these live here because they're useful
// independent of dependency inference (diagnostic rendering, the `model
// list` command, etc).

// ContainerImages returns every container image referenced by a pod
// template, in traversal order: spec.template.spec.initContainers[*].image
// followed by spec.template.spec.containers[*].image. Works for
// Deployment, StatefulSet, DaemonSet, Job and CronJob's nested job
// template alike since they all nest a PodTemplateSpec at the same path
// relative to their own spec root, except CronJob which nests one level
// deeper under spec.jobTemplate.
func ContainerImages(spec Node) []string {
	podSpec, ok := podSpecNode(spec)
	if !ok {
		return nil
	}
	var images []string
	for _, field := range []string{"initContainers", "containers"} {
		containers, ok := podSpec.Get(field)
		if !ok || containers.Kind != KindSeq {
			continue
		}
		for _, c := range containers.Seq {
			if img, ok := c.Path("image"); ok {
				if s, ok := img.AsString(); ok {
					images = append(images, s)
				}
			}
		}
	}
	return images
}

// podSpecNode locates the PodSpec node nested in a workload's spec,
// accounting for CronJob's extra spec.jobTemplate.spec indirection.
func podSpecNode(spec Node) (Node, bool) {
	if jobTemplate, ok := spec.Path("jobTemplate", "spec", "template", "spec"); ok {
		return jobTemplate, true
	}
	return spec.Path("template", "spec")
}

// OwnerReference is a minimal decode of one metadata.ownerReferences entry.
type OwnerReference struct {
	Kind string
	Name string
}

// OwnerReferences decodes metadata.ownerReferences from a full object Node
// (as returned by CanonicalObject.Full, or a live object's spec tree).
func OwnerReferences(full Node) []OwnerReference {
	refs, ok := full.Path("metadata", "ownerReferences")
	if !ok || refs.Kind != KindSeq {
		return nil
	}
	out := make([]OwnerReference, 0, len(refs.Seq))
	for _, r := range refs.Seq {
		var ref OwnerReference
		if k, ok := r.Path("kind"); ok {
			ref.Kind, _ = k.AsString()
		}
		if n, ok := r.Path("name"); ok {
			ref.Name, _ = n.AsString()
		}
		out = append(out, ref)
	}
	return out
}

// ServiceAccountName returns spec.template.spec.serviceAccountName (or
// spec.serviceAccountName for a bare Pod), and whether it was set.
func ServiceAccountName(spec Node) (string, bool) {
	if podSpec, ok := podSpecNode(spec); ok {
		if n, ok := podSpec.Path("serviceAccountName"); ok {
			if s, ok := n.AsString(); ok && s != "" {
				return s, true
			}
		}
	}
	if n, ok := spec.Path("serviceAccountName"); ok {
		if s, ok := n.AsString(); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// SelectorLabels decodes spec.selector.matchLabels (Deployment/StatefulSet
// style) or spec.selector (Service style, a flat map) into a plain map.
func SelectorLabels(spec Node) map[string]string {
	if ml, ok := spec.Path("selector", "matchLabels"); ok && ml.Kind == KindMap {
		return mapOfStrings(ml)
	}
	if sel, ok := spec.Path("selector"); ok && sel.Kind == KindMap {
		return mapOfStrings(sel)
	}
	return nil
}

func mapOfStrings(n Node) map[string]string {
	out := make(map[string]string, len(n.Map))
	for _, e := range n.Map {
		if s, ok := e.Value.AsString(); ok {
			out[e.Key] = s
		}
	}
	return out
}

// PodLabels returns spec.template.metadata.labels of a workload, the set
// matched against a Service's selector.
func PodLabels(spec Node) map[string]string {
	if labels, ok := spec.Path("template", "metadata", "labels"); ok && labels.Kind == KindMap {
		return mapOfStrings(labels)
	}
	return nil
}
