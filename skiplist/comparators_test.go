package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedComparator(t *testing.T) {
	assert.Equal(t, 1, OrderedComparator(2, 1))
	assert.Equal(t, -1, OrderedComparator(1, 2))
	assert.Equal(t, 0, OrderedComparator(2, 2))

	assert.Equal(t, 1, OrderedComparator("bbb", "aaa"))
	assert.Equal(t, -1, OrderedComparator("ccc", "ddd"))
	assert.Equal(t, 0, OrderedComparator("abc", "abc"))
}

func TestInverseComparator(t *testing.T) {
	cmp := InverseComparator(Int64Comparator)
	assert.Equal(t, -1, cmp(2, 1))
	assert.Equal(t, 1, cmp(1, 2))
	assert.Equal(t, 0, cmp(3, 3))
}

func TestBytesComparator(t *testing.T) {
	assert.Negative(t, BytesComparator([]byte("a"), []byte("b")))
	assert.Zero(t, BytesComparator(nil, []byte{}))
	assert.Positive(t, BytesComparator([]byte("ab"), []byte("a")))
}
