package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveNamespaceNoOverride(t *testing.T) {
	s := Settings{}
	assert.Equal(t, "explicit", s.ResolveNamespace("explicit"))
	assert.Equal(t, "", s.ResolveNamespace(""))
}

func TestResolveNamespaceExplicitWins(t *testing.T) {
	s := Settings{Namespace: "override", NamespaceConflict: ExplicitWins}
	assert.Equal(t, "explicit", s.ResolveNamespace("explicit"), "expected the object's own namespace to win")
	assert.Equal(t, "override", s.ResolveNamespace(""), "expected the override applied when the object left it blank")
}

func TestResolveNamespaceOverrideWins(t *testing.T) {
	s := Settings{Namespace: "override", NamespaceConflict: OverrideWins}
	assert.Equal(t, "override", s.ResolveNamespace("explicit"), "expected the override to win")
}

func TestParseModulePath(t *testing.T) {
	cases := map[string][]string{
		"":                    nil,
		"a":                   {"a"},
		"a,b":                 {"a", "b"},
		"a, b ,,c":            {"a", "b", "c"},
		"  /tmp/x , /tmp/y  ": {"/tmp/x", "/tmp/y"},
	}
	for in, want := range cases {
		got := ParseModulePath(in)
		assert.Equal(t, want, got, "ParseModulePath(%q)", in)
	}
}

func TestNamespaceConflictString(t *testing.T) {
	assert.Equal(t, "ExplicitWins", ExplicitWins.String())
	assert.Equal(t, "OverrideWins", OverrideWins.String())
}
