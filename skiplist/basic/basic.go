package basic

import (
	"errors"
	"math/rand"

	"github.com/Hakuto4838/LaneList.git/skiplist"
	"github.com/Hakuto4838/LaneList.git/skiplist/element"
)

const (
	DefaultMaxLevel    = 32
	DefaultProbability = 0.5
)

var ErrNilElement = errors.New("basic: nil element")

type basicNode[K any] struct {
	elem *element.Element[K]
	next []*basicNode[K]
}

// SkipList 是以指標實作的傳統 skip list，key 唯一，作為 lane list 的對照組。
type SkipList[K any] struct {
	head    *basicNode[K]
	level   int
	p       float64
	compare skiplist.Comparator[K]
	rand    *rand.Rand
	size    int
	nodes   int
}

func NewSkipList[K any](comparator skiplist.Comparator[K], maxLevel int, p float64, seed int64) *SkipList[K] {
	if maxLevel < 1 {
		maxLevel = DefaultMaxLevel
	}
	if p <= 0 || p >= 1 {
		p = DefaultProbability
	}

	return &SkipList[K]{
		head:    &basicNode[K]{next: make([]*basicNode[K], maxLevel)},
		level:   1,
		p:       p,
		compare: comparator,
		rand:    rand.New(rand.NewSource(seed)),
	}
}

func (sl *SkipList[K]) randomLevel() int {
	lvl := 1
	for lvl < len(sl.head.next) && sl.rand.Float64() < sl.p {
		lvl++
	}
	return lvl
}

// findPreds 記錄每層最後一個 key < target 的節點
func (sl *SkipList[K]) findPreds(key K) []*basicNode[K] {
	preds := make([]*basicNode[K], len(sl.head.next))
	cur := sl.head
	for h := sl.level - 1; h >= 0; h-- {
		for cur.next[h] != nil && sl.compare(cur.next[h].elem.Key(), key) < 0 {
			cur = cur.next[h]
		}
		preds[h] = cur
	}
	return preds
}

// Insert 插入元素，key 已存在時直接取代其 payload。
func (sl *SkipList[K]) Insert(e *element.Element[K]) error {
	if e == nil {
		return ErrNilElement
	}

	key := e.Key()
	preds := sl.findPreds(key)

	if nd := preds[0].next[0]; nd != nil && sl.compare(nd.elem.Key(), key) == 0 {
		nd.elem = e
		return nil
	}

	lvl := sl.randomLevel()
	for h := sl.level; h < lvl; h++ {
		preds[h] = sl.head
	}
	sl.level = max(sl.level, lvl)

	nd := &basicNode[K]{elem: e, next: make([]*basicNode[K], lvl)}
	for h := 0; h < lvl; h++ {
		nd.next[h] = preds[h].next[h]
		preds[h].next[h] = nd
	}

	sl.size++
	sl.nodes += lvl

	return nil
}

func (sl *SkipList[K]) find(key K) (*basicNode[K], int) {
	cur, steps := sl.head, 0
	for h := sl.level - 1; h >= 0; h-- {
		for cur.next[h] != nil {
			c := sl.compare(cur.next[h].elem.Key(), key)
			if c == 0 {
				return cur.next[h], steps + 1
			}
			if c > 0 {
				break
			}
			cur = cur.next[h]
			steps++
		}
		if h > 0 {
			steps++
		}
	}
	return nil, steps
}

func (sl *SkipList[K]) Search(key K) (*element.Element[K], bool) {
	nd, _ := sl.find(key)
	if nd == nil {
		return nil, false
	}
	return nd.elem, true
}

func (sl *SkipList[K]) Contains(key K) bool {
	nd, _ := sl.find(key)
	return nd != nil
}

func (sl *SkipList[K]) Steps(key K) int {
	_, steps := sl.find(key)
	return steps
}

// Delete 移除 key，不存在時回傳 false
func (sl *SkipList[K]) Delete(key K) bool {
	preds := sl.findPreds(key)

	nd := preds[0].next[0]
	if nd == nil || sl.compare(nd.elem.Key(), key) != 0 {
		return false
	}

	for h := range nd.next {
		preds[h].next[h] = nd.next[h]
	}
	for sl.level > 1 && sl.head.next[sl.level-1] == nil {
		sl.level--
	}

	sl.size--
	sl.nodes -= len(nd.next)

	return true
}

func (sl *SkipList[K]) Len() int   { return sl.size }
func (sl *SkipList[K]) Nodes() int { return sl.nodes }

// Lanes 回傳層數上限
func (sl *SkipList[K]) Lanes() int {
	return len(sl.head.next)
}

func (sl *SkipList[K]) Keys(lane int) []K {
	if lane < 0 || lane >= len(sl.head.next) {
		return nil
	}

	var keys []K
	for nd := sl.head.next[lane]; nd != nil; nd = nd.next[lane] {
		keys = append(keys, nd.elem.Key())
	}
	return keys
}

func (sl *SkipList[K]) GetMaxStats() (int, int) {
	if sl.size == 0 {
		return 0, -1
	}
	return sl.size, sl.level - 1
}
