package lane

import (
	"math"

	"github.com/Hakuto4838/LaneList.git/skiplist/element"
)

// nilIdx marks an absent node; as a search position it stands for the
// virtual start of a lane.
const nilIdx int32 = -1

// node 是某個 lane 上的一個節點。同一次插入建立的節點共用同一個 element，
// down 指向下一層的同一座塔，base 是 lane 0 節點的索引。
type node[K any] struct {
	elem *element.Element[K]
	next int32
	down int32
	base int32
}

// arena 以索引管理所有節點，刪除時節點回收到 free list 重用。
type arena[K any] struct {
	nodes []node[K]
	free  []int32
	limit int
}

func (a *arena[K]) available() int {
	if a.limit == 0 {
		return math.MaxInt
	}

	return a.limit - a.inUse()
}

func (a *arena[K]) inUse() int {
	return len(a.nodes) - len(a.free)
}

func (a *arena[K]) alloc(n node[K]) int32 {
	if last := len(a.free) - 1; last >= 0 {
		idx := a.free[last]
		a.free = a.free[:last]
		a.nodes[idx] = n
		return idx
	}

	a.nodes = append(a.nodes, n)

	return int32(len(a.nodes) - 1)
}

func (a *arena[K]) release(idx int32) {
	a.nodes[idx] = node[K]{next: nilIdx, down: nilIdx, base: nilIdx}
	a.free = append(a.free, idx)
}
