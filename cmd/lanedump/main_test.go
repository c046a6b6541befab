package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuto4838/LaneList.git/skiplist/lane"
)

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys(" 1,3, 2 ,,")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2}, keys)

	keys, err = parseKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = parseKeys("1,x")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var sb strings.Builder
	payload := make([]byte, 18)

	err := run(&sb, lane.Config{Lanes: 2, P: 0, Seed: 1}, payload, []int64{1, 3, 2}, []int64{2, 4}, true)
	require.NoError(t, err)

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "List 1:\t|1|  --X\nList 0:\t|1|  -->  |2|  -->  |3|  --X\n"))
	assert.Contains(t, out, "search 2: found (18 bytes,")
	assert.Contains(t, out, "search 4: not found")
}

func TestRunInvalidConfig(t *testing.T) {
	var sb strings.Builder
	err := run(&sb, lane.Config{Lanes: 0}, []byte("x"), []int64{1}, nil, false)
	assert.ErrorIs(t, err, lane.ErrInvalidConfig)
}
