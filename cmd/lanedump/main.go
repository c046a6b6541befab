package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/Hakuto4838/LaneList.git/skiplist"
	"github.com/Hakuto4838/LaneList.git/skiplist/analyTool"
	"github.com/Hakuto4838/LaneList.git/skiplist/element"
	"github.com/Hakuto4838/LaneList.git/skiplist/lane"
)

func parseKeys(s string) ([]int64, error) {
	var keys []int64
	for _, p := range strings.Split(s, ",") {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}
		k, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", t, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// run 依序插入 keys，印出每條 lane，並回報 find 中每個 key 的搜尋結果
func run(w io.Writer, conf lane.Config, payload []byte, keys, find []int64, table bool) error {
	l, err := lane.New(skiplist.Int64Comparator, conf)
	if err != nil {
		return err
	}

	for _, k := range keys {
		if err := l.Insert(element.Pack(payload, k)); err != nil {
			return fmt.Errorf("insert %d: %w", k, err)
		}
	}

	if err := l.Dump(w); err != nil {
		return err
	}

	if table {
		analyTool.PrintLanes[int64](w, l, skiplist.Int64Comparator, 0)
	}

	for _, k := range find {
		if e, found := l.Search(k); found {
			fmt.Fprintf(w, "search %d: found (%d bytes, %d steps)\n", k, e.Size(), l.Steps(k))
		} else {
			fmt.Fprintf(w, "search %d: not found\n", k)
		}
	}

	return analyTool.CheckStruct[int64](l, skiplist.Int64Comparator)
}

func main() {
	var (
		keysStr string
		findStr string
		value   string
		lanes   int
		p       float64
		seed    int64
		table   bool
	)

	flag.StringVar(&keysStr, "keys", "1,3,2,2,3", "comma-separated keys to insert, in order")
	flag.StringVar(&findStr, "find", "", "comma-separated keys to search after inserting")
	flag.StringVar(&value, "payload", "Corruption check", "payload stored with every key")
	flag.IntVar(&lanes, "lanes", 4, "number of lanes")
	flag.Float64Var(&p, "p", 0.5, "promotion probability")
	flag.Int64Var(&seed, "seed", 42, "seed for coin flips")
	flag.BoolVar(&table, "table", false, "also print the lanes as an aligned table")
	flag.Parse()

	logger := level.NewFilter(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)), level.AllowInfo())

	keys, err := parseKeys(keysStr)
	if err != nil {
		level.Error(logger).Log("msg", "invalid -keys", "err", err)
		os.Exit(2)
	}

	find, err := parseKeys(findStr)
	if err != nil {
		level.Error(logger).Log("msg", "invalid -find", "err", err)
		os.Exit(2)
	}

	// 與 C 字串相同，payload 含結尾的 0
	payload := append([]byte(value), 0)

	conf := lane.Config{Lanes: lanes, P: p, Seed: seed}
	if err := run(os.Stdout, conf, payload, keys, find, table); err != nil {
		level.Error(logger).Log("msg", "lane dump failed", "err", err)
		os.Exit(1)
	}
}
