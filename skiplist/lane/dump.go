package lane

import (
	"fmt"
	"io"
	"strings"
)

// Dump 由最高 lane 到 lane 0 印出每條 lane 的 key，例如：
//
//	List 1:	|1|  -->  |3|  --X
//	List 0:	|1|  -->  |2|  -->  |3|  --X
//
// 空的 lane 只印出 "  --X"。
func (l *LaneList[K]) Dump(w io.Writer) error {
	var sb strings.Builder

	for lane := len(l.heads) - 1; lane >= 0; lane-- {
		fmt.Fprintf(&sb, "List %d:\t", lane)

		for idx := l.heads[lane]; idx != nilIdx; idx = l.arena.nodes[idx].next {
			fmt.Fprintf(&sb, "|%v|", l.keyAt(idx))
			if l.arena.nodes[idx].next != nilIdx {
				sb.WriteString("  -->  ")
			}
		}

		sb.WriteString("  --X\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
