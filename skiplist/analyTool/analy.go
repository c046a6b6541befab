package analyTool

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/Hakuto4838/LaneList.git/skiplist"
)

type StepMap[K comparable] map[K]int

// AnalyzeStep 根據 map 提供的 key 出現機率計算平均搜尋步數
func AnalyzeStep[K comparable](sl skiplist.Tracer[K], keys map[K]float64) (float64, StepMap[K]) {
	if len(keys) == 0 {
		return 0.0, nil
	}

	step := StepMap[K]{}

	var totalExpectedSteps float64
	var totalProbability float64

	for k, prob := range keys {
		s := sl.Steps(k)
		step[k] = s
		totalExpectedSteps += float64(s) * prob
		totalProbability += prob
	}

	if totalProbability > 0 {
		return totalExpectedSteps / totalProbability, step
	}
	return 0.0, step
}

// CheckStruct 檢查每條 lane 是否有序、是否為下一層的子序列，
// 以及非空 lane 之下沒有空 lane。
func CheckStruct[K any](sl skiplist.Analyable[K], cmp skiplist.Comparator[K]) error {
	lanes := make([][]K, sl.Lanes())
	for i := range lanes {
		lanes[i] = sl.Keys(i)
	}

	for i, keys := range lanes {
		for j := 1; j < len(keys); j++ {
			if cmp(keys[j-1], keys[j]) > 0 {
				return fmt.Errorf("lane %d out of order at position %d: %v > %v", i, j, keys[j-1], keys[j])
			}
		}

		if i == 0 {
			continue
		}

		if len(keys) > 0 && len(lanes[i-1]) == 0 {
			return fmt.Errorf("lane %d is not empty while lane %d is empty", i, i-1)
		}

		if !isSubsequence(keys, lanes[i-1], cmp) {
			return fmt.Errorf("lane %d is not a subsequence of lane %d", i, i-1)
		}
	}

	return nil
}

func isSubsequence[K any](sub, seq []K, cmp skiplist.Comparator[K]) bool {
	j := 0
	for _, k := range seq {
		if j < len(sub) && cmp(sub[j], k) == 0 {
			j++
		}
	}

	return j == len(sub)
}

// CountLanes 計算每條 lane 的節點數量
func CountLanes[K any](sl skiplist.Analyable[K]) []int {
	counts := make([]int, sl.Lanes())
	for i := range counts {
		counts[i] = len(sl.Keys(i))
	}

	return counts
}

// laneGrid 以 lane 0 的位置為欄，由最高 lane 往下排列，
// 該 lane 沒有該位置的 key 時留空。
func laneGrid[K any](sl skiplist.Analyable[K], cmp skiplist.Comparator[K], maxNodes int) [][]string {
	base := sl.Keys(0)
	if maxNodes > 0 && len(base) > maxNodes {
		base = base[:maxNodes]
	}

	rows := make([][]string, 0, sl.Lanes())

	for i := sl.Lanes() - 1; i >= 0; i-- {
		keys := sl.Keys(i)
		row := make([]string, len(base)+1)
		row[0] = fmt.Sprintf("lane %d", i)

		j := 0
		for p, k := range base {
			if j < len(keys) && cmp(keys[j], k) == 0 {
				row[p+1] = fmt.Sprintf("%v", k)
				j++
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// PrintLanes 以表格印出 lane list 的結構，最多顯示 maxNodes 個位置（0 表示全部）。
func PrintLanes[K any](w io.Writer, sl skiplist.Analyable[K], cmp skiplist.Comparator[K], maxNodes int) {
	rows := laneGrid(sl, cmp, maxNodes)

	header := make([]string, 1, len(rows[0]))
	header[0] = "Lane"
	for p := 1; p < len(rows[0]); p++ {
		header = append(header, fmt.Sprintf("%d", p-1))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// PrintLanesToCSV 將 lane list 的結構輸出到 CSV
func PrintLanesToCSV[K any](writer *csv.Writer, sl skiplist.Analyable[K], cmp skiplist.Comparator[K], maxNodes int) error {
	if err := writer.WriteAll(laneGrid(sl, cmp, maxNodes)); err != nil {
		return fmt.Errorf("write lanes csv: %w", err)
	}

	return nil
}
