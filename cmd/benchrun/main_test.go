package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuto4838/LaneList.git/datastream"
	"github.com/Hakuto4838/LaneList.git/skiplist/lane"
)

func TestParseLanes(t *testing.T) {
	lanes, err := parseLanes("4, 8,4,,16")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 16}, lanes)

	_, err = parseLanes("4,zero")
	assert.EqualError(t, err, `invalid lane count "zero"`)

	_, err = parseLanes("0")
	assert.Error(t, err)

	_, err = parseLanes(" , ")
	assert.Error(t, err)
}

func TestCollectBenchFilesFromDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.bin", "a.bin", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	files, err := collectBenchFilesFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bin")}, files)
}

func TestBenchmarkConfig(t *testing.T) {
	gen := datastream.NewZipfDataGenerator(32, 1.07, 1.0, 42)
	bf, err := datastream.GenerateBenchFile(gen, 500, 0.5, 0.1, 42)
	require.NoError(t, err)

	stats, err := benchmarkConfig(bf, lane.Config{Lanes: 4, P: 0.5, Seed: 42}, 2)
	require.NoError(t, err)

	assert.Equal(t, "4", stats.label)
	assert.LessOrEqual(t, stats.minMs, stats.maxMs)
	assert.False(t, math.IsNaN(stats.avgSteps))
	assert.GreaterOrEqual(t, stats.nodes, stats.size)

	_, err = benchmarkConfig(bf, lane.Config{Lanes: 4, P: 0.5, MaxNodes: 5, Seed: 42}, 1)
	assert.ErrorIs(t, err, lane.ErrAllocation)
}

func TestRunBenchmark(t *testing.T) {
	gen := datastream.NewUniformDataGenerator(16, 1)
	bf, err := datastream.GenerateBenchFile(gen, 100, 0.5, 0.1, 1)
	require.NoError(t, err)

	opts.List.P = 0.5
	opts.Runs = 1
	opts.Seed = 1

	results, err := runBenchmark(bf, []int{1, 4})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].label)
	assert.Equal(t, "4", results[1].label)
	// a single lane never promotes
	assert.Equal(t, results[0].size, results[0].nodes)

	opts.Baseline = true
	defer func() { opts.Baseline = false }()

	results, err = runBenchmark(bf, []int{4})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "basic", results[1].label)
	// 兩者重播同一序列，元素數一致
	assert.Equal(t, results[0].size, results[1].size)
}
