package tree

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graph is an adjacency list keyed by node name.
type graph map[string][]string

func (g graph) children(n string) []string {
	return g[n]
}

// exampleTree is A -> [B, C], B -> [D].
var exampleTree = graph{
	"A": {"B", "C"},
	"B": {"D"},
}

// deepTree has uneven branches so that depth and sibling order interact.
var deepTree = graph{
	"r":  {"a", "b", "c"},
	"a":  {"a1", "a2"},
	"b":  {},
	"c":  {"c1"},
	"a1": {"a11"},
	"c1": {"c11", "c12"},
}

func record(g graph, root string) []string {
	var visited []string
	Walk(root, g.children, func(n string) {
		visited = append(visited, n)
	})
	return visited
}

// depths computes distance from root by following the child relation.
func depths(g graph, root string) map[string]int {
	d := map[string]int{root: 0}
	stack := []string{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, k := range g[n] {
			d[k] = d[n] + 1
			stack = append(stack, k)
		}
	}
	return d
}

func TestWalk_Example(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C", "D"}, record(exampleTree, "A"))
}

func TestWalk_SingleNode(t *testing.T) {
	visited := record(graph{}, "only")
	assert.Equal(t, []string{"only"}, visited)
}

func TestWalk_VisitsEveryNodeOnce(t *testing.T) {
	visited := record(deepTree, "r")

	want := depths(deepTree, "r")
	require.Len(t, visited, len(want))

	seen := map[string]int{}
	for _, n := range visited {
		seen[n]++
	}
	for n := range want {
		assert.Equal(t, 1, seen[n], "node %s", n)
	}
}

func TestWalk_BreadthFirstOrder(t *testing.T) {
	visited := record(deepTree, "r")
	d := depths(deepTree, "r")

	for i := 1; i < len(visited); i++ {
		assert.LessOrEqual(t, d[visited[i-1]], d[visited[i]],
			"%s (depth %d) visited before %s (depth %d)",
			visited[i-1], d[visited[i-1]], visited[i], d[visited[i]])
	}
	assert.Equal(t, []string{"r", "a", "b", "c", "a1", "a2", "c1", "a11", "c11", "c12"}, visited)
}

func TestWalk_ChildrenBeforeVisit(t *testing.T) {
	var events []string
	Walk("A",
		func(n string) []string {
			events = append(events, "children "+n)
			return exampleTree[n]
		},
		func(n string) {
			events = append(events, "visit "+n)
		},
	)

	assert.Equal(t, []string{
		"children A", "visit A",
		"children B", "visit B",
		"children C", "visit C",
		"children D", "visit D",
	}, events)
}

func TestWalk_ChildrenTrustedAsGiven(t *testing.T) {
	// D is reachable through both B and C and is visited once per path.
	diamond := graph{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "D"}, record(diamond, "A"))
}

func TestWalk_PointerNodes(t *testing.T) {
	type node struct {
		name string
		kids []*node
	}
	d := &node{name: "D"}
	root := &node{name: "A", kids: []*node{{name: "B", kids: []*node{d}}, {name: "C"}}}

	var got []*node
	Walk(root, func(n *node) []*node { return n.kids }, func(n *node) {
		got = append(got, n)
	})

	require.Len(t, got, 4)
	assert.Same(t, root, got[0])
	assert.Same(t, d, got[3])
}

func TestWalk_PanicPropagates(t *testing.T) {
	var visited []string

	assert.PanicsWithValue(t, "boom", func() {
		Walk("A",
			func(n string) []string {
				if n == "B" {
					panic("boom")
				}
				return exampleTree[n]
			},
			func(n string) {
				visited = append(visited, n)
			},
		)
	})

	assert.Equal(t, []string{"A"}, visited)
}

func TestFold(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		count := Fold("A", exampleTree.children, func(acc int, _ string) int { return acc + 1 }, 0)
		assert.Equal(t, 4, count)
	})

	t.Run("identity", func(t *testing.T) {
		for _, tc := range []struct {
			g    graph
			root string
		}{
			{graph{}, "x"},
			{exampleTree, "A"},
			{deepTree, "r"},
		} {
			got := Fold(tc.root, tc.g.children, func(acc string, _ string) string { return acc }, "seed")
			assert.Equal(t, "seed", got)
		}
	})

	t.Run("left fold over visitation order", func(t *testing.T) {
		concat := func(acc string, n string) string { return acc + "," + n }

		got := Fold("r", deepTree.children, concat, ">")

		want := ">"
		for _, n := range record(deepTree, "r") {
			want = concat(want, n)
		}
		assert.Equal(t, want, got)
		assert.Equal(t, ">,r,a,b,c,a1,a2,c1,a11,c11,c12", got)
	})

	t.Run("different aggregate type", func(t *testing.T) {
		lengths := Fold("r", deepTree.children, func(acc []int, n string) []int {
			return append(acc, len(n))
		}, nil)
		assert.Equal(t, []int{1, 1, 1, 1, 2, 2, 2, 3, 3, 3}, lengths)
	})
}

func TestCollect(t *testing.T) {
	isLeaf := func(n string) bool { return len(exampleTree[n]) == 0 }

	t.Run("leaves", func(t *testing.T) {
		assert.Equal(t, []string{"C", "D"}, Collect("A", exampleTree.children, isLeaf))
	})

	t.Run("all matches walk", func(t *testing.T) {
		got := Collect("r", deepTree.children, func(string) bool { return true })
		assert.Equal(t, record(deepTree, "r"), got)
	})

	t.Run("none", func(t *testing.T) {
		got := Collect("r", deepTree.children, func(string) bool { return false })
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("filter preserves visitation order", func(t *testing.T) {
		got := Collect("r", deepTree.children, func(n string) bool { return strings.HasPrefix(n, "c") })
		assert.Equal(t, []string{"c", "c1", "c11", "c12"}, got)
	})
}

func TestTryWalk_ChildrenError(t *testing.T) {
	errLookup := errors.New("lookup failed")
	var visited []string

	err := TryWalk("r",
		func(n string) ([]string, error) {
			if n == "c" {
				return nil, errLookup
			}
			return deepTree[n], nil
		},
		func(n string) error {
			visited = append(visited, n)
			return nil
		},
	)

	require.Error(t, err)
	assert.Same(t, errLookup, err, "error must be returned unwrapped")
	assert.Equal(t, []string{"r", "a", "b"}, visited)
}

func TestTryWalk_VisitError(t *testing.T) {
	errVisit := fmt.Errorf("visit %s", "a")
	var visited []string
	childCalls := 0

	err := TryWalk("r",
		func(n string) ([]string, error) {
			childCalls++
			return deepTree[n], nil
		},
		func(n string) error {
			visited = append(visited, n)
			if n == "a" {
				return errVisit
			}
			return nil
		},
	)

	assert.Same(t, errVisit, err)
	assert.Equal(t, []string{"r", "a"}, visited)
	assert.Equal(t, 2, childCalls)
}

func TestTryWalk_Success(t *testing.T) {
	var visited []string
	err := TryWalk("A", Infallible(exampleTree.children), func(n string) error {
		visited = append(visited, n)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, visited)
}

func TestTryFold(t *testing.T) {
	count := func(acc int, _ string) (int, error) { return acc + 1, nil }

	t.Run("success", func(t *testing.T) {
		got, err := TryFold("A", Infallible(exampleTree.children), count, 0)
		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})

	t.Run("accumulate error discards aggregate", func(t *testing.T) {
		errAcc := errors.New("bad node")
		got, err := TryFold("A", Infallible(exampleTree.children), func(acc int, n string) (int, error) {
			if n == "C" {
				return 0, errAcc
			}
			return acc + 1, nil
		}, 100)
		assert.ErrorIs(t, err, errAcc)
		assert.Zero(t, got)
	})

	t.Run("children error", func(t *testing.T) {
		errLookup := errors.New("lookup failed")
		_, err := TryFold("A", func(string) ([]string, error) { return nil, errLookup }, count, 0)
		assert.Same(t, errLookup, err)
	})
}

func TestTryCollect(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := TryCollect("A", Infallible(exampleTree.children), func(n string) (bool, error) {
			return n != "A", nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "C", "D"}, got)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := TryCollect("A", Infallible(exampleTree.children), func(string) (bool, error) {
			return false, nil
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("test error", func(t *testing.T) {
		errTest := errors.New("predicate failed")
		got, err := TryCollect("A", Infallible(exampleTree.children), func(n string) (bool, error) {
			if n == "D" {
				return false, errTest
			}
			return true, nil
		})
		assert.Same(t, errTest, err)
		assert.Nil(t, got)
	})
}
