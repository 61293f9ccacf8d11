package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/disjointset"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, nil, builder.Path())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	}, g.Edges())

	_, err = builder.BuildGraph(1, nil, nil, builder.Path())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(3, nil, nil, builder.Cycle())
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, core.Edge{From: 2, To: 0, Weight: 1}, g.Edges()[2])

	_, err = builder.BuildGraph(2, nil, nil, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, nil, builder.Complete())
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())

	dg, err := builder.BuildGraph(5, []core.GraphOption{core.WithDirected(true)}, nil, builder.Complete())
	require.NoError(t, err)
	assert.Equal(t, 20, dg.EdgeCount())
}

func TestRandomSparse(t *testing.T) {
	// Without rng a fractional p must fail.
	_, err := builder.BuildGraph(5, nil, nil, builder.RandomSparse(0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(5, nil, nil, builder.RandomSparse(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	// Extremes need no rng.
	g, err := builder.BuildGraph(5, nil, nil, builder.RandomSparse(0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
	g, err = builder.BuildGraph(5, nil, nil, builder.RandomSparse(1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())

	// Same seed ⇒ identical edge list.
	opts := []builder.BuilderOption{builder.WithSeed(11), builder.WithWeightFn(builder.IntWeightFn(1, 9))}
	a, err := builder.BuildGraph(30, nil, opts, builder.RandomSparse(0.2))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(11), builder.WithWeightFn(builder.IntWeightFn(1, 9))}
	b, err := builder.BuildGraph(30, nil, opts, builder.RandomSparse(0.2))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestRandomTreeIsSpanning(t *testing.T) {
	g, err := builder.BuildGraph(50, nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomTree())
	require.NoError(t, err)
	require.Equal(t, 49, g.EdgeCount())

	ds := disjointset.New(g.VertexCount())
	for _, e := range g.Edges() {
		assert.True(t, ds.Union(e.From, e.To), "tree edge %v closes a cycle", e)
	}
	assert.Equal(t, 1, ds.Count())

	_, err = builder.BuildGraph(5, nil, nil, builder.RandomTree())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuildGraphNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(3, nil, nil, builder.Path(), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
