package element

import (
	"bytes"

	"github.com/twmb/murmur3"
)

// Element 是插入 lane list 的最小單位：一段不可變的 payload 與排序用的 key。
type Element[K any] struct {
	payload []byte
	key     K
}

// Pack 複製 payload 並建立新的 Element，payload 為 nil 時回傳 nil。
func Pack[K any](payload []byte, key K) *Element[K] {
	if payload == nil {
		return nil
	}

	return &Element[K]{
		payload: bytes.Clone(payload),
		key:     key,
	}
}

// PackHashed keys the element by the murmur3 hash of its payload.
func PackHashed(payload []byte) *Element[uint64] {
	if payload == nil {
		return nil
	}

	return Pack(payload, murmur3.Sum64(payload))
}

func (e *Element[K]) Key() K {
	return e.key
}

// Size 回傳 payload 的位元組長度
func (e *Element[K]) Size() int {
	return len(e.payload)
}

// Payload returns a copy, the element's own buffer never leaves the package.
func (e *Element[K]) Payload() []byte {
	return bytes.Clone(e.payload)
}
