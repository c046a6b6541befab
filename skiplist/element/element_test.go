package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/murmur3"
)

func TestPack(t *testing.T) {
	val := []byte("Corruption check\x00")
	e := Pack(val, int64(1))
	require.NotNil(t, e)

	assert.Equal(t, int64(1), e.Key())
	assert.Equal(t, 17, e.Size())
	assert.Equal(t, val, e.Payload())

	// the caller's buffer stays caller owned
	val[0] = 'X'
	assert.Equal(t, byte('C'), e.Payload()[0])

	// and so does the returned copy
	p := e.Payload()
	p[1] = 'X'
	assert.Equal(t, byte('o'), e.Payload()[1])
}

func TestPackNilPayload(t *testing.T) {
	assert.Nil(t, Pack[int](nil, 1))
	assert.Nil(t, PackHashed(nil))
}

func TestPackEmptyPayload(t *testing.T) {
	e := Pack([]byte{}, "k")
	require.NotNil(t, e)
	assert.Equal(t, 0, e.Size())
}

func TestPackHashed(t *testing.T) {
	e := PackHashed([]byte("hello"))
	require.NotNil(t, e)
	assert.Equal(t, murmur3.Sum64([]byte("hello")), e.Key())
	assert.Equal(t, e.Key(), PackHashed([]byte("hello")).Key())
	assert.NotEqual(t, e.Key(), PackHashed([]byte("world")).Key())
}
