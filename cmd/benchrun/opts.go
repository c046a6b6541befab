package main

import (
	"fmt"
	"strconv"
	"strings"
)

var opts struct {
	Bench struct {
		File string `long:"file" description:"bench file in SLBENCH1 format"`
		Dir  string `long:"dir" description:"directory of bench files (every .bin file is replayed)"`
	} `group:"bench" namespace:"bench"`

	List struct {
		Lanes    string  `long:"lanes" description:"comma-separated lane counts to compare" default:"4,8,16"`
		P        float64 `long:"p" description:"promotion probability" default:"0.5"`
		MaxNodes int     `long:"max-nodes" description:"node limit per list (0 = unbounded)" default:"0"`
	} `group:"list" namespace:"list"`

	Baseline bool `long:"baseline" description:"also replay on a classic pointer skip list"`

	Runs    int   `long:"runs" description:"how many times to repeat each benchmark" default:"5"`
	Seed    int64 `long:"seed" description:"seed for coin flips" default:"42"`
	Verbose bool  `long:"verbose" description:"verbose mode"`
}

// parseLanes 解析逗號分隔的 lane 數量，忽略重複與空白
func parseLanes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	seen := map[int]bool{}

	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}

		n, err := strconv.Atoi(t)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid lane count %q", t)
		}

		if !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no lane counts in %q", s)
	}

	return out, nil
}
