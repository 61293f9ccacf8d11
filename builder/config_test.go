// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	assert.Nil(t, newBuilderConfig().rng)

	// 2. WithSeed must reproduce the same stream
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	// 3. WithRand installs the exact instance
	r := rand.New(rand.NewSource(7))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)

	// 4. Later options override earlier ones
	assert.Same(t, r, newBuilderConfig(WithSeed(1), WithRand(r)).rng)
}

func TestWeightFnOption(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, DefaultEdgeWeight, cfg.weightFn(nil))

	cfg = newBuilderConfig(WithWeightFn(ConstantWeightFn(2.5)))
	assert.Equal(t, 2.5, cfg.weightFn(nil))
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithWeightFn(nil) })
}
