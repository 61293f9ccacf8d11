package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
)

// branchy builds the undirected graph 0—1, 1—2, 2—3, 1—4 over n vertices.
func branchy(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewFromEdges(n, []core.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 1, To: 4},
	})
	require.NoError(t, err)

	return g
}

func TestDFS_Validation(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(2), 2)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PostOrderDepthParent(t *testing.T) {
	res, err := dfs.DFS(branchy(t, 5), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 4, 1, 0}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, 2}, res.Depth)
	assert.Equal(t, []int{-1, 0, 1, 2, 1}, res.Parent)
	assert.Equal(t, []bool{true, true, true, true, true}, res.Visited)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(branchy(t, 5), 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.Equal(t, -1, res.Depth[2])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(branchy(t, 5), 0, dfs.WithFilterNeighbor(func(v int) bool { return v != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 0}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
	assert.False(t, res.Visited[3])
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(branchy(t, 7), 2, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Order, 7)
	assert.Equal(t, -1, res.Parent[5])
	assert.Equal(t, 0, res.Depth[6])
	assert.Equal(t, 6, res.Order[len(res.Order)-1])
}

func TestDFS_Hooks(t *testing.T) {
	var visits, exits []int
	_, err := dfs.DFS(branchy(t, 5), 0,
		dfs.WithOnVisit(func(v int) error { visits = append(visits, v); return nil }),
		dfs.WithOnExit(func(v int) error { exits = append(exits, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, visits)
	assert.Equal(t, []int{3, 2, 4, 1, 0}, exits)

	stop := errors.New("stop")
	_, err = dfs.DFS(branchy(t, 5), 0, dfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(branchy(t, 5), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// A long path must not exhaust the goroutine stack.
func TestDFS_DeepPath(t *testing.T) {
	const n = 200000
	g := core.NewGraph(n, core.WithDirected(true))
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, n-1, res.Depth[n-1])
	assert.Equal(t, n-1, res.Order[0])
}
