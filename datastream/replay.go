package datastream

import (
	"encoding/binary"
	"fmt"

	"github.com/Hakuto4838/LaneList.git/skiplist/element"
)

// Target 是可重播操作序列的 int64 list，*lane.LaneList[int64] 即可滿足
type Target interface {
	Insert(e *element.Element[int64]) error
	Contains(key int64) bool
	Delete(key int64) bool
}

// ReplayStats 統計重播結果
type ReplayStats struct {
	Inserts int
	Hits    int
	Misses  int
	Deletes int
}

// Replay 依序把操作套用到 l，payload 為 key 的 8 位元組 little endian 編碼。
// 插入失敗時回傳錯誤並停止。
func Replay(l Target, ops []Operation) (ReplayStats, error) {
	var stats ReplayStats

	for i, op := range ops {
		switch op.Type {
		case OpQuery:
			if l.Contains(op.Key) {
				stats.Hits++
			} else {
				stats.Misses++
			}
		case OpInsert:
			payload := binary.LittleEndian.AppendUint64(nil, uint64(op.Key))
			if err := l.Insert(element.Pack(payload, op.Key)); err != nil {
				return stats, fmt.Errorf("op %d: insert %d: %w", i, op.Key, err)
			}
			stats.Inserts++
		case OpDelete:
			if l.Delete(op.Key) {
				stats.Deletes++
			}
		}
	}

	return stats, nil
}
