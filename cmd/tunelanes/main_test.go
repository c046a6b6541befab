package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuto4838/LaneList.git/datastream"
	"github.com/Hakuto4838/LaneList.git/saalgo"
	"github.com/Hakuto4838/LaneList.git/skiplist/lane"
)

func testBench(t *testing.T) *datastream.BenchFile {
	t.Helper()
	gen := datastream.NewZipfDataGenerator(64, 1.07, 1.0, 42)
	bf, err := datastream.GenerateBenchFile(gen, 1000, 0.5, 0.1, 42)
	require.NoError(t, err)
	return bf
}

func TestEvaluate(t *testing.T) {
	bf := testBench(t)

	single := evaluate(bf, lane.Config{Lanes: 1, P: 0.5, Seed: 1}, 1)
	multi := evaluate(bf, lane.Config{Lanes: 8, P: 0.5, Seed: 1}, 1)
	assert.Less(t, multi, single)

	assert.True(t, math.IsInf(evaluate(bf, lane.Config{Lanes: 0}, 1), 1))
	assert.True(t, math.IsInf(evaluate(bf, lane.Config{Lanes: 4, P: 0.5, MaxNodes: 4}, 1), 1))
}

func TestGenerateNeighborStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := &laneSolution{lanes: 1, p: 0.05, maxLanes: 3, cache: map[[2]float64]float64{}}

	var cur saalgo.Solution = s
	for i := 0; i < 500; i++ {
		cur = cur.GenerateNeighbor(rng)
		n := cur.(*laneSolution)
		assert.GreaterOrEqual(t, n.lanes, 1)
		assert.LessOrEqual(t, n.lanes, 3)
		assert.GreaterOrEqual(t, n.p, 0.05)
		assert.LessOrEqual(t, n.p, 0.95)
	}

	// s 本身不受影響
	assert.Equal(t, 1, s.lanes)
	assert.Equal(t, 0.05, s.p)
}

func TestAnnealingImprovesSingleLane(t *testing.T) {
	bf := testBench(t)
	initial := &laneSolution{
		lanes:    1,
		p:        0.5,
		maxLanes: 8,
		nodeCost: 0.5,
		seed:     1,
		bf:       bf,
		cache:    map[[2]float64]float64{},
	}

	conf := saalgo.DefaultConfig()
	conf.RandomSeed = 1
	conf.InitialTemp = 5
	conf.Iterations = 10
	conf.MaxIterations = 100

	best, cost := saalgo.NewSimulatedAnnealing(conf).Run(initial)
	assert.Less(t, cost, initial.GetCost())
	assert.Greater(t, best.(*laneSolution).lanes, 1)
}
