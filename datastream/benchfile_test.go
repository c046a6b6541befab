package datastream

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadBenchFileFromZipf(t *testing.T) {
	n, k := 8, 200
	gen := NewZipfDataGenerator(n, 1.2, 0.0, 42)

	bf, err := GenerateBenchFile(gen, k, 0.5, 0.1, 42)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "bench.bin")
	require.NoError(t, WriteBenchFile(file, bf))

	got, err := ReadBenchFile(file)
	require.NoError(t, err)

	// 驗證分布 map
	require.Len(t, got.Dist, n)
	for key, want := range gen.KeyMap() {
		assert.InDelta(t, want, got.Dist[key], 1e-12, "key %d", key)
	}

	// 驗證操作序列
	require.Equal(t, bf.Ops, got.Ops)
	require.Len(t, got.Ops, k)

	present := map[int64]bool{}
	for i, op := range got.Ops {
		switch op.Type {
		case OpInsert:
			assert.False(t, present[op.Key], "op[%d] inserts a present key", i)
			present[op.Key] = true
		case OpQuery:
			assert.True(t, present[op.Key], "op[%d] queries an absent key", i)
		case OpDelete:
			assert.True(t, present[op.Key], "op[%d] deletes an absent key", i)
			present[op.Key] = false
		}
	}

	seen := map[int64]bool{}
	for _, op := range got.Ops {
		seen[op.Key] = true
	}
	assert.Len(t, seen, n)

	// 驗證 ToSequenceModel
	m := got.ToSequenceModel()
	count := 0
	for {
		if _, ok := m.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, k, count)

	m.Reset()
	op, ok := m.Next()
	assert.True(t, ok)
	assert.Equal(t, got.Ops[0], op)
}

func TestGenerateBenchFileInvalid(t *testing.T) {
	gen := NewUniformDataGenerator(10, 1)

	_, err := GenerateBenchFile(nil, 10, 1, 0, 1)
	assert.Error(t, err)

	_, err = GenerateBenchFile(gen, 5, 1, 0, 1)
	assert.EqualError(t, err, "k (5) must be >= n (10) to ensure each key appears at least once")

	_, err = GenerateBenchFile(gen, 20, 0.1, 0, 1)
	assert.EqualError(t, err, "phase1Size (2) must satisfy n <= phase1Size <= k")

	_, err = GenerateBenchFile(gen, 20, 1, 1.5, 1)
	assert.EqualError(t, err, "deleteRatio (1.5) must be between 0.0 and 1.0")
}

func TestDecodeBenchFileRejectsBadHeader(t *testing.T) {
	_, err := DecodeBenchFile(bytes.NewReader([]byte("NOTBENCH\x01\x00\x00\x00")))
	assert.ErrorIs(t, err, ErrInvalidBenchFile)

	var buf bytes.Buffer
	require.NoError(t, (&BenchFile{Dist: map[int64]float64{1: 1}}).Encode(&buf))
	raw := buf.Bytes()
	raw[8] = 2 // version

	_, err = DecodeBenchFile(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrInvalidBenchFile)
}

func TestGenerators(t *testing.T) {
	z := NewZipfDataGenerator(16, 1.07, 1.0, 7)
	total := 0.0
	for _, w := range z.KeyMap() {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Greater(t, z.Entropy(), 0.0)
	for _, idx := range z.GenerateSequence(100) {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 16)
	}

	u := NewUniformDataGenerator(8, 7)
	assert.InDelta(t, 3.0, u.Entropy(), 1e-9)
	assert.InDelta(t, 3.0, EntropyFromDist(u.KeyMap()), 1e-9)
	for i := 0; i < 100; i++ {
		idx := u.Next()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
	}
}

func TestOperationTypeString(t *testing.T) {
	assert.Equal(t, "Query", OpQuery.String())
	assert.Equal(t, "Insert", OpInsert.String())
	assert.Equal(t, "Delete", OpDelete.String())
	assert.Equal(t, "Unknown", OperationType(9).String())
}
