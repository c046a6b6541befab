package lane

import (
	"fmt"
	"math/rand"

	"github.com/Hakuto4838/LaneList.git/skiplist"
	"github.com/Hakuto4838/LaneList.git/skiplist/element"
)

// LaneList 由 L 條有序單向鏈結 lane 組成。lane 0 包含所有元素（含重複 key），
// 較高的 lane 是下一層的子序列。Not safe for concurrent use.
type LaneList[K any] struct {
	heads   []int32
	arena   arena[K]
	compare skiplist.Comparator[K]
	rand    skiplist.Source
	p       float64
	size    int
}

// New 建立空的 lane list，所有 lane head 皆為空。
func New[K any](comparator skiplist.Comparator[K], conf Config) (*LaneList[K], error) {
	switch {
	case comparator == nil:
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidConfig)
	case conf.Lanes < 1:
		return nil, fmt.Errorf("%w: lanes must be at least 1, got %d", ErrInvalidConfig, conf.Lanes)
	case conf.P < 0 || conf.P >= 1:
		return nil, fmt.Errorf("%w: p must be in [0,1), got %v", ErrInvalidConfig, conf.P)
	case conf.MaxNodes < 0:
		return nil, fmt.Errorf("%w: negative node limit %d", ErrInvalidConfig, conf.MaxNodes)
	}

	src := conf.Rand
	if src == nil {
		src = rand.New(rand.NewSource(conf.Seed))
	}

	heads := make([]int32, conf.Lanes)
	for i := range heads {
		heads[i] = nilIdx
	}

	return &LaneList[K]{
		heads:   heads,
		arena:   arena[K]{limit: conf.MaxNodes},
		compare: comparator,
		rand:    src,
		p:       conf.P,
	}, nil
}

// Lanes returns L.
func (l *LaneList[K]) Lanes() int {
	return len(l.heads)
}

// Len returns the number of elements, i.e. the length of lane 0.
func (l *LaneList[K]) Len() int {
	return l.size
}

// Nodes returns the number of live nodes across all lanes.
func (l *LaneList[K]) Nodes() int {
	return l.arena.inUse()
}

// Height 回傳非空 lane 的數量
func (l *LaneList[K]) Height() int {
	h := len(l.heads)
	for h > 0 && l.heads[h-1] == nilIdx {
		h--
	}

	return h
}

func (l *LaneList[K]) GetMaxStats() (int, int) {
	return l.size, l.Height() - 1
}

func (l *LaneList[K]) keyAt(idx int32) K {
	return l.arena.nodes[idx].elem.Key()
}

// nextOf 回傳 pos 在該 lane 的下一個節點，pos 為 nilIdx 時即 lane head。
func (l *LaneList[K]) nextOf(pos int32, lane int) int32 {
	if pos == nilIdx {
		return l.heads[lane]
	}

	return l.arena.nodes[pos].next
}

func (l *LaneList[K]) setNext(pos int32, lane int, next int32) {
	if pos == nilIdx {
		l.heads[lane] = next
		return
	}

	l.arena.nodes[pos].next = next
}

// downOf moves a search position from lane to lane-1.
func (l *LaneList[K]) downOf(pos int32, lane int) int32 {
	if pos == nilIdx {
		return nilIdx
	}

	down := l.arena.nodes[pos].down
	if down == nilIdx {
		panic(fmt.Sprintf("lane: node %d on lane %d has no counterpart below", pos, lane))
	}

	return down
}

// checkLanes panics when a non-empty lane sits above an empty one.
func (l *LaneList[K]) checkLanes() {
	for i := 1; i < len(l.heads); i++ {
		if l.heads[i] != nilIdx && l.heads[i-1] == nilIdx {
			panic(fmt.Sprintf("lane: lane %d is not empty while lane %d is empty", i, i-1))
		}
	}
}

// findPreds 由最高 lane 往下走，記錄每條 lane 的前驅節點。
// inclusive 時前驅是最後一個 key <= target 的節點（穩定插入），
// 否則是最後一個 key < target 的節點。
func (l *LaneList[K]) findPreds(key K, inclusive bool) []int32 {
	preds := make([]int32, len(l.heads))
	pos := nilIdx

	for lane := len(l.heads) - 1; lane >= 0; lane-- {
		for next := l.nextOf(pos, lane); next != nilIdx; next = l.nextOf(pos, lane) {
			c := l.compare(l.keyAt(next), key)
			if c > 0 || (c == 0 && !inclusive) {
				break
			}
			pos = next
		}

		preds[lane] = pos

		if lane > 0 {
			pos = l.downOf(pos, lane)
		}
	}

	return preds
}

// towerHeight 決定新元素佔用幾條 lane。空表或新最小值佔滿所有 lane，
// 其餘從 lane 1 開始連續擲硬幣，失敗即停止。
func (l *LaneList[K]) towerHeight(key K) int {
	if l.heads[0] == nilIdx || l.compare(key, l.keyAt(l.heads[0])) < 0 {
		return len(l.heads)
	}

	h := 1
	for h < len(l.heads) && l.rand.Float64() < l.p {
		h++
	}

	return h
}

// Insert 插入元素。相同 key 的元素不會合併，新元素排在既有相同 key 之後。
// The tower is sized and the arena checked before any lane is touched, so a
// failed insert leaves the list unchanged.
func (l *LaneList[K]) Insert(e *element.Element[K]) error {
	if e == nil {
		return ErrInvalidArgument
	}

	l.checkLanes()

	key := e.Key()
	height := l.towerHeight(key)

	if avail := l.arena.available(); avail < height {
		return fmt.Errorf("%w: tower of %d nodes, %d available", ErrAllocation, height, avail)
	}

	preds := l.findPreds(key, true)
	base, below := nilIdx, nilIdx

	for lane := 0; lane < height; lane++ {
		idx := l.arena.alloc(node[K]{
			elem: e,
			next: l.nextOf(preds[lane], lane),
			down: below,
			base: base,
		})

		if lane == 0 {
			base = idx
			l.arena.nodes[idx].base = idx
		}

		l.setNext(preds[lane], lane, idx)
		below = idx
	}

	l.size++

	return nil
}

// find 回傳第一個在由上而下走訪中遇到的相同 key 節點，以及走了幾步
// （水平前進與下降各算一步）。
func (l *LaneList[K]) find(key K) (int32, int) {
	l.checkLanes()

	if l.heads[0] == nilIdx || l.compare(l.keyAt(l.heads[0]), key) > 0 {
		return nilIdx, 0
	}

	pos, steps := nilIdx, 0

	for lane := len(l.heads) - 1; lane >= 0; lane-- {
		for next := l.nextOf(pos, lane); next != nilIdx; next = l.nextOf(pos, lane) {
			c := l.compare(l.keyAt(next), key)
			if c == 0 {
				return next, steps + 1
			}
			if c > 0 {
				break
			}
			pos = next
			steps++
		}

		if lane > 0 {
			pos = l.downOf(pos, lane)
			steps++
		}
	}

	return nilIdx, steps
}

// Search 搜尋 key，回傳第一個遇到的相符元素。
func (l *LaneList[K]) Search(key K) (*element.Element[K], bool) {
	idx, _ := l.find(key)
	if idx == nilIdx {
		return nil, false
	}

	return l.arena.nodes[idx].elem, true
}

// Contains 判斷 key 是否存在
func (l *LaneList[K]) Contains(key K) bool {
	idx, _ := l.find(key)
	return idx != nilIdx
}

// Steps returns how many moves a search for key takes.
func (l *LaneList[K]) Steps(key K) int {
	_, steps := l.find(key)
	return steps
}

// Delete 移除 lane 0 上第一個相符的元素，以及它在所有 lane 的節點，
// 並把節點歸還 arena。key 不存在時回傳 false。
func (l *LaneList[K]) Delete(key K) bool {
	l.checkLanes()

	preds := l.findPreds(key, false)

	target := l.nextOf(preds[0], 0)
	if target == nilIdx || l.compare(l.keyAt(target), key) != 0 {
		return false
	}

	removed := make([]int32, 0, len(l.heads))

	for lane := 0; lane < len(l.heads); lane++ {
		pos, found := preds[lane], nilIdx

		// Equal keys are contiguous, the tower node is among them.
		for next := l.nextOf(pos, lane); next != nilIdx; next = l.nextOf(pos, lane) {
			if l.compare(l.keyAt(next), key) != 0 {
				break
			}
			if l.arena.nodes[next].base == target {
				found = next
				break
			}
			pos = next
		}

		if found == nilIdx {
			break
		}

		l.setNext(pos, lane, l.arena.nodes[found].next)
		removed = append(removed, found)
	}

	for _, idx := range removed {
		l.arena.release(idx)
	}

	l.size--

	return true
}

// Keys 依序回傳某一 lane 的所有 key
func (l *LaneList[K]) Keys(lane int) []K {
	if lane < 0 || lane >= len(l.heads) {
		return nil
	}

	var keys []K
	for idx := l.heads[lane]; idx != nilIdx; idx = l.arena.nodes[idx].next {
		keys = append(keys, l.keyAt(idx))
	}

	return keys
}

// Scan visits lane 0 in order until fn returns false.
func (l *LaneList[K]) Scan(fn func(e *element.Element[K]) bool) {
	for idx := l.heads[0]; idx != nilIdx; idx = l.arena.nodes[idx].next {
		if !fn(l.arena.nodes[idx].elem) {
			return
		}
	}
}
