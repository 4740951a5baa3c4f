package config

import "time"

// NamespaceConflict selects how Settings.ResolveNamespace resolves a
// collision between the -n override and an object's own
// metadata.namespace.
type NamespaceConflict int

const (
	// ExplicitWins keeps an object's own metadata.namespace whenever it set
	// one, applying the -n override only to objects that left it blank.
	// This is the default: an explicit namespace in a manifest is read as
	// the author's deliberate choice.
	ExplicitWins NamespaceConflict = iota
	// OverrideWins applies the -n override unconditionally, even over an
	// object's own metadata.namespace.
	OverrideWins
)

func (c NamespaceConflict) String() string {
	if c == OverrideWins {
		return "OverrideWins"
	}
	return "ExplicitWins"
}

// Settings is the resolved form of the CLI flag surface (model list, deploy
// plan/detail/run). Zero value is a usable, maximally permissive config:
// no namespace override, unbounded parallelism, no timeouts.
type Settings struct {
	Namespace         string
	ModulePath        []string
	SubElements       bool
	Validate          bool
	HideNoAction      bool
	CreateNamespace   bool
	Parallelism       int
	PerObjectTimeout  time.Duration
	DeployTimeout     time.Duration
	MaxAttempts       int
	ReadinessPoll     time.Duration
	NamespaceConflict NamespaceConflict
}

// ResolveNamespace applies Settings.Namespace to an object's own namespace
// per NamespaceConflict. objNamespace is the object's own
// metadata.namespace ("" if it didn't set one); the kind-scoping decision
// (cluster-scoped kinds never get a namespace) is the caller's, since
// Settings has no notion of kind.
func (s Settings) ResolveNamespace(objNamespace string) string {
	if s.Namespace == "" {
		return objNamespace
	}
	if objNamespace != "" && s.NamespaceConflict == ExplicitWins {
		return objNamespace
	}
	return s.Namespace
}
