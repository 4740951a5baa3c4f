package graph

import "github.com/giantswarm/piceli/internal/object"

// Reference is a raw, unresolved cross-reference discovered by an
// extractor: a (kind, namespace, name) the referencing object names, not
// yet checked against the input set. build.go resolves it against the
// index, drops it silently if absent and unvalidated, or reports
// DanglingReferenceError if absent and validate=true.
type Reference struct {
	Kind      string
	Namespace string
	Name      string
}

// edgeExtractor derives the references obj makes (objects that must be
// applied before obj) from its spec tree. Extractors are pure: they only
// read obj.Spec() and idx, never mutate either. idx is used only by
// extractServiceSelector, which needs to scan candidate workloads rather
// than look up a named reference.
type edgeExtractor func(obj object.CanonicalObject, idx *index) []Reference

// workloadKinds carries a PodTemplateSpec and is subject to rules 3, 4 and 5.
var workloadKinds = map[string]bool{
	"Deployment":  true,
	"StatefulSet": true,
	"DaemonSet":   true,
	"Job":         true,
	"CronJob":     true,
	"Pod":         true,
}

// extractorsByKind is the reference-discovery table from SPEC_FULL.md §4 —
// one entry per kind with a rule beyond namespace containment (rule 1,
// which applies unconditionally and is handled separately in build.go).
var extractorsByKind = map[string]edgeExtractor{
	"RoleBinding":             extractRoleBindingRefs,
	"ClusterRoleBinding":      extractRoleBindingRefs,
	"HorizontalPodAutoscaler": extractScaleTargetRef,
	"VerticalPodAutoscaler":   extractScaleTargetRef,
	"PersistentVolumeClaim":   extractPVCStorageClass,
	"Service":                 extractServiceSelector,
}

func init() {
	for kind := range workloadKinds {
		extractorsByKind[kind] = extractWorkloadRefs
	}
}

// extractWorkloadRefs implements rules 3, 4 and 5 for any kind carrying a
// PodTemplateSpec: the service account it mounts, the ConfigMaps/Secrets it
// consumes via volumes/envFrom/valueFrom, and the PVCs it mounts.
func extractWorkloadRefs(obj object.CanonicalObject, _ *index) []Reference {
	spec := obj.Spec()
	ns := obj.Identity().Namespace
	var refs []Reference

	if sa, ok := object.ServiceAccountName(spec); ok {
		refs = append(refs, Reference{Kind: "ServiceAccount", Namespace: ns, Name: sa})
	}

	podSpec, ok := workloadPodSpec(spec)
	if !ok {
		return refs
	}

	if volumes, ok := podSpec.Path("volumes"); ok && volumes.Kind == object.KindSeq {
		for _, v := range volumes.Seq {
			if cm, ok := v.Path("configMap", "name"); ok {
				if name, ok := cm.AsString(); ok {
					refs = append(refs, Reference{Kind: "ConfigMap", Namespace: ns, Name: name})
				}
			}
			if secret, ok := v.Path("secret", "secretName"); ok {
				if name, ok := secret.AsString(); ok {
					refs = append(refs, Reference{Kind: "Secret", Namespace: ns, Name: name})
				}
			}
			if pvc, ok := v.Path("persistentVolumeClaim", "claimName"); ok {
				if name, ok := pvc.AsString(); ok {
					refs = append(refs, Reference{Kind: "PersistentVolumeClaim", Namespace: ns, Name: name})
				}
			}
		}
	}

	if containers, ok := podSpec.Path("containers"); ok && containers.Kind == object.KindSeq {
		for _, c := range containers.Seq {
			refs = append(refs, extractContainerEnvRefs(c, ns)...)
		}
	}

	return refs
}

func extractContainerEnvRefs(container object.Node, ns string) []Reference {
	var refs []Reference
	if envFrom, ok := container.Path("envFrom"); ok && envFrom.Kind == object.KindSeq {
		for _, e := range envFrom.Seq {
			if cm, ok := e.Path("configMapRef", "name"); ok {
				if name, ok := cm.AsString(); ok {
					refs = append(refs, Reference{Kind: "ConfigMap", Namespace: ns, Name: name})
				}
			}
			if secret, ok := e.Path("secretRef", "name"); ok {
				if name, ok := secret.AsString(); ok {
					refs = append(refs, Reference{Kind: "Secret", Namespace: ns, Name: name})
				}
			}
		}
	}
	if env, ok := container.Path("env"); ok && env.Kind == object.KindSeq {
		for _, e := range env.Seq {
			if cm, ok := e.Path("valueFrom", "configMapKeyRef", "name"); ok {
				if name, ok := cm.AsString(); ok {
					refs = append(refs, Reference{Kind: "ConfigMap", Namespace: ns, Name: name})
				}
			}
			if secret, ok := e.Path("valueFrom", "secretKeyRef", "name"); ok {
				if name, ok := secret.AsString(); ok {
					refs = append(refs, Reference{Kind: "Secret", Namespace: ns, Name: name})
				}
			}
		}
	}
	return refs
}

// workloadPodSpec locates a PodTemplateSpec's spec, or treats a bare Pod's
// own spec as the pod spec.
func workloadPodSpec(spec object.Node) (object.Node, bool) {
	if jobTemplate, ok := spec.Path("jobTemplate", "spec", "template", "spec"); ok {
		return jobTemplate, true
	}
	if tmpl, ok := spec.Path("template", "spec"); ok {
		return tmpl, true
	}
	if _, ok := spec.Path("containers"); ok {
		return spec, true
	}
	return object.Node{}, false
}

// extractRoleBindingRefs implements rule 2: the Role/ClusterRole named by
// roleRef and every ServiceAccount subject.
func extractRoleBindingRefs(obj object.CanonicalObject, _ *index) []Reference {
	spec := obj.Spec()
	ns := obj.Identity().Namespace
	var refs []Reference

	if roleRef, ok := spec.Path("roleRef"); ok {
		kind, _ := roleRef.Path("kind")
		name, _ := roleRef.Path("name")
		k, _ := kind.AsString()
		n, _ := name.AsString()
		if k != "" && n != "" {
			roleNS := ns
			if k == "ClusterRole" {
				roleNS = ""
			}
			refs = append(refs, Reference{Kind: k, Namespace: roleNS, Name: n})
		}
	}

	if subjects, ok := spec.Path("subjects"); ok && subjects.Kind == object.KindSeq {
		for _, s := range subjects.Seq {
			kind, _ := s.Path("kind")
			if k, ok := kind.AsString(); !ok || k != "ServiceAccount" {
				continue
			}
			name, _ := s.Path("name")
			n, _ := name.AsString()
			saNS := ns
			if v, ok := s.Path("namespace"); ok {
				if s, ok := v.AsString(); ok && s != "" {
					saNS = s
				}
			}
			if n != "" {
				refs = append(refs, Reference{Kind: "ServiceAccount", Namespace: saNS, Name: n})
			}
		}
	}

	return refs
}

// extractScaleTargetRef implements rule 6.
func extractScaleTargetRef(obj object.CanonicalObject, _ *index) []Reference {
	spec := obj.Spec()
	ns := obj.Identity().Namespace

	target, ok := spec.Path("scaleTargetRef")
	if !ok {
		return nil
	}
	kind, _ := target.Path("kind")
	name, _ := target.Path("name")
	k, _ := kind.AsString()
	n, _ := name.AsString()
	if k == "" || n == "" {
		return nil
	}
	return []Reference{{Kind: k, Namespace: ns, Name: n}}
}

// extractPVCStorageClass implements the second half of rule 5: a PVC
// depends on its named StorageClass, which is cluster-scoped.
func extractPVCStorageClass(obj object.CanonicalObject, _ *index) []Reference {
	spec := obj.Spec()
	name, ok := spec.Path("storageClassName")
	if !ok {
		return nil
	}
	n, ok := name.AsString()
	if !ok || n == "" {
		return nil
	}
	return []Reference{{Kind: "StorageClass", Namespace: "", Name: n}}
}

// extractServiceSelector implements rule 7: a Service depends on any
// workload in the set whose pod template labels match its selector. A
// service with no matching workload has no edge — not an error. Every
// reference returned here already came from the index, so it always
// resolves; dangling-reference validation never rejects a Service.
func extractServiceSelector(obj object.CanonicalObject, idx *index) []Reference {
	selector := object.SelectorLabels(obj.Spec())
	if len(selector) == 0 {
		return nil
	}
	ns := obj.Identity().Namespace

	var refs []Reference
	for kind := range workloadKinds {
		for _, candidate := range idx.ofKind(kind) {
			if candidate.Identity().Namespace != ns {
				continue
			}
			podLabels := object.PodLabels(candidate.Spec())
			if labelsMatch(selector, podLabels) {
				id := candidate.Identity()
				refs = append(refs, Reference{Kind: id.Kind, Namespace: id.Namespace, Name: id.Name})
			}
		}
	}
	return refs
}

func labelsMatch(selector, labels map[string]string) bool {
	if len(selector) == 0 {
		return false
	}
	for k, v := range selector {
		if labels[k] != v {
			return false
		}
	}
	return true
}
