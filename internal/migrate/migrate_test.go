package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duiker-sh/duiker/internal/dag"
)

func TestRegistry_SortFollowsDependencies(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Migration{Name: "c", Depends: []string{"a", "b"}})
	reg.MustRegister(Migration{Name: "a"})
	reg.MustRegister(Migration{Name: "b", Depends: []string{"a"}})

	order, err := reg.Sort()
	require.NoError(t, err)
	require.Len(t, order, 3)

	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	assert.Less(t, pos["a"], pos["b"])
	assert.Less(t, pos["a"], pos["c"])
	assert.Less(t, pos["b"], pos["c"])
}

func TestRegistry_SortDeterministic(t *testing.T) {
	build := func() *Registry {
		reg := NewRegistry()
		reg.MustRegister(Migration{Name: "initial"})
		reg.MustRegister(Migration{Name: "add_index", Depends: []string{"initial"}})
		reg.MustRegister(Migration{Name: "add_view", Depends: []string{"initial"}})
		return reg
	}

	first, err := build().Sort()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := build().Sort()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRegistry_SortIncludesIndependents(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Migration{Name: "solo"})
	reg.MustRegister(Migration{Name: "other"})

	order, err := reg.Sort()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"solo", "other"}, order)
}

func TestRegistry_SortCycleIsFatal(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Migration{Name: "a", Depends: []string{"b"}})
	reg.MustRegister(Migration{Name: "b", Depends: []string{"a"}})

	_, err := reg.Sort()
	require.Error(t, err)
	assert.True(t, dag.IsCycle(err))
}

func TestRegistry_RejectsDuplicateNames(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Migration{Name: "initial"}))
	assert.Error(t, reg.Register(Migration{Name: "initial"}))
	assert.Error(t, reg.Register(Migration{Name: ""}))
}
