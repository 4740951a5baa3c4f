package compare

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a map key or a sequence index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path locates one position in the merged spec tree, as a sequence of map
// keys and sequence indices from the root.
type Path []Segment

// String renders a path the way diagnostic output shows it, e.g.
// "spec.template.spec.containers[0].image".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if s.IsIndex {
			b.WriteString("[")
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteString("]")
			continue
		}
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(s.Key)
	}
	return b.String()
}

func (p Path) append(seg Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// matchesPattern checks p against a dotted pattern where "*" matches any
// single map key or sequence index, e.g. "spec.template.spec.containers.*.env".
func matchesPattern(p Path, pattern string) bool {
	parts := strings.Split(pattern, ".")
	if len(parts) != len(p) {
		return false
	}
	for i, want := range parts {
		if want == "*" {
			continue
		}
		if p[i].IsIndex {
			return false
		}
		if p[i].Key != want {
			return false
		}
	}
	return true
}

// matchesPrefix checks whether pattern (dotted, no wildcards needed for
// the immutability table's simple prefixes) is a prefix of p.
func matchesPrefix(p Path, pattern string) bool {
	parts := strings.Split(pattern, ".")
	if len(parts) > len(p) {
		return false
	}
	for i, want := range parts {
		if want == "*" {
			continue
		}
		if p[i].IsIndex || p[i].Key != want {
			return false
		}
	}
	return true
}
