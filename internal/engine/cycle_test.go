package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRuleCycles_DAG_NoWarnings(t *testing.T) {
	rules := []FramingRule{
		newStubRule("a", 10),
		newStubRule("b", 20, "a"),
		newStubRule("c", 30, "a", "b"),
	}

	assert.Empty(t, AnalyzeRuleCycles(rules))
}

func TestAnalyzeRuleCycles_SelfLoop(t *testing.T) {
	rules := []FramingRule{
		newStubRule("a", 10, "a"),
	}

	warnings := AnalyzeRuleCycles(rules)

	require.Len(t, warnings, 1)
	assert.Equal(t, []string{"a", "a"}, warnings[0].Path)
	assert.Contains(t, warnings[0].Message, "depends on itself")
}

func TestAnalyzeRuleCycles_PairCycle(t *testing.T) {
	rules := []FramingRule{
		newStubRule("a", 10, "b"),
		newStubRule("b", 20, "a"),
	}

	warnings := AnalyzeRuleCycles(rules)

	require.Len(t, warnings, 1)
	assert.Equal(t, []string{"a", "b", "a"}, warnings[0].Path)
}

func TestAnalyzeRuleCycles_UnknownDependencyNotACycle(t *testing.T) {
	// An unregistered dependency ID carries no ordering constraint, so
	// it cannot participate in a cycle either.
	rules := []FramingRule{
		newStubRule("a", 10, "ghost"),
	}

	assert.Empty(t, AnalyzeRuleCycles(rules))
}

func TestAnalyzeRuleCycles_MixedGraph(t *testing.T) {
	rules := []FramingRule{
		newStubRule("a", 10, "b"),
		newStubRule("b", 20, "a"),
		newStubRule("standalone", 30),
		newStubRule("selfish", 40, "selfish"),
	}

	warnings := AnalyzeRuleCycles(rules)

	require.Len(t, warnings, 2)
	assert.Equal(t, []string{"a", "b", "a"}, warnings[0].Path)
	assert.Equal(t, []string{"selfish", "selfish"}, warnings[1].Path)
}

func TestAnalyzeRuleCycles_Empty(t *testing.T) {
	assert.Empty(t, AnalyzeRuleCycles(nil))
}
