package skiplist

// Comparator 比較兩個 key。
// It returns a negative number if a < b, 0 if a == b, and a positive number if a > b.
type Comparator[K any] func(a, b K) int

// Source 提供升階擲硬幣用的亂數，*rand.Rand 即可滿足。
type Source interface {
	Float64() float64
}

// Analyable 提供分析工具需要的唯讀視圖
type Analyable[K any] interface {
	// Lanes 回傳 lane 總數
	Lanes() int
	// Keys 依序回傳某一 lane 的 key
	Keys(lane int) []K
	// GetMaxStats 回傳 lane 0 節點數與目前最高的非空 lane
	GetMaxStats() (maxNodes int, maxLevel int)
}

// Tracer 可回報搜尋某個 key 所花的步數
type Tracer[K any] interface {
	Steps(key K) int
}
