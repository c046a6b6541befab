package basic

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuto4838/LaneList.git/datastream"
	"github.com/Hakuto4838/LaneList.git/skiplist"
	"github.com/Hakuto4838/LaneList.git/skiplist/analyTool"
	"github.com/Hakuto4838/LaneList.git/skiplist/element"
)

func TestSkipListInterface(t *testing.T) {
	var _ skiplist.Analyable[int] = (*SkipList[int])(nil)
	var _ skiplist.Tracer[int] = (*SkipList[int])(nil)
	var _ datastream.Target = (*SkipList[int64])(nil)
}

func TestSkipListBasic(t *testing.T) {
	sl := NewSkipList(skiplist.IntComparator, 4, 0.5, 42)

	require.NoError(t, sl.Insert(element.Pack([]byte("one"), 1)))
	require.NoError(t, sl.Insert(element.Pack([]byte("three"), 3)))
	require.NoError(t, sl.Insert(element.Pack([]byte("two"), 2)))
	assert.ErrorIs(t, sl.Insert(nil), ErrNilElement)

	assert.Equal(t, 3, sl.Len())
	assert.Equal(t, []int{1, 2, 3}, sl.Keys(0))
	assert.Nil(t, sl.Keys(4))

	e, ok := sl.Search(2)
	require.True(t, ok)
	assert.Equal(t, []byte("two"), e.Payload())

	// key 唯一，重複插入取代 payload
	require.NoError(t, sl.Insert(element.Pack([]byte("TWO"), 2)))
	assert.Equal(t, 3, sl.Len())
	e, _ = sl.Search(2)
	assert.Equal(t, []byte("TWO"), e.Payload())

	assert.True(t, sl.Delete(2))
	assert.False(t, sl.Delete(2))
	assert.False(t, sl.Contains(2))
	assert.Equal(t, []int{1, 3}, sl.Keys(0))

	assert.NoError(t, analyTool.CheckStruct[int](sl, skiplist.IntComparator))
}

func TestSkipListMatchesReference(t *testing.T) {
	gen := datastream.NewZipfDataGenerator(200, 1.2, 1.0, 7)
	bf, err := datastream.GenerateBenchFile(gen, 5000, 0.5, 0.3, 7)
	require.NoError(t, err)

	sl := NewSkipList(skiplist.Int64Comparator, 0, 0, 7)
	_, err = datastream.Replay(sl, bf.Ops)
	require.NoError(t, err)

	present := map[int64]bool{}
	for _, op := range bf.Ops {
		switch op.Type {
		case datastream.OpInsert:
			present[op.Key] = true
		case datastream.OpDelete:
			delete(present, op.Key)
		}
	}

	want := make([]int64, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	assert.Equal(t, want, sl.Keys(0))
	assert.Equal(t, len(want), sl.Len())
	assert.GreaterOrEqual(t, sl.Nodes(), sl.Len())
	assert.NoError(t, analyTool.CheckStruct[int64](sl, skiplist.Int64Comparator))

	for _, k := range want {
		assert.Positive(t, sl.Steps(k))
	}
}
