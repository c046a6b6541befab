package lane

import (
	"time"

	"github.com/Hakuto4838/LaneList.git/skiplist"
)

// Config 設定 lane list 的形狀與亂數來源
type Config struct {
	Lanes    int             // lane 數量 L，至少 1
	P        float64         // 每次升階成功的機率 [0,1)
	MaxNodes int             // arena 可容納的節點上限，0 表示不限
	Seed     int64           // Rand 為 nil 時用來建立 math/rand 來源
	Rand     skiplist.Source // 擲硬幣用的亂數來源（可選）
}

// DefaultConfig returns four lanes with fair coin promotion.
func DefaultConfig() Config {
	return Config{
		Lanes: 4,
		P:     0.5,
		Seed:  time.Now().UnixNano(),
	}
}
