package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"

	"github.com/Hakuto4838/LaneList.git/datastream"
	"github.com/Hakuto4838/LaneList.git/skiplist"
	"github.com/Hakuto4838/LaneList.git/skiplist/analyTool"
	"github.com/Hakuto4838/LaneList.git/skiplist/basic"
	"github.com/Hakuto4838/LaneList.git/skiplist/lane"
)

// benchList 是 benchrun 可以測量的 list
type benchList interface {
	datastream.Target
	skiplist.Analyable[int64]
	skiplist.Tracer[int64]
	Len() int
	Nodes() int
}

type benchStats struct {
	label    string
	avgMs    float64
	minMs    float64
	maxMs    float64
	avgSteps float64
	nodes    int
	size     int
}

// collectBenchFilesFromDir 收集指定目錄下所有 .bin 檔案
func collectBenchFilesFromDir(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.bin"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// benchmarkConfig 以同一組設定重播 runs 次，每次使用新的 lane list
func benchmarkConfig(bf *datastream.BenchFile, conf lane.Config, runs int) (benchStats, error) {
	return benchmarkList(bf, fmt.Sprintf("%d", conf.Lanes), runs, func() (benchList, error) {
		l, err := lane.New(skiplist.Int64Comparator, conf)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}

// benchmarkBaseline 以傳統 skip list 作為對照組
func benchmarkBaseline(bf *datastream.BenchFile, p float64, seed int64, runs int) (benchStats, error) {
	return benchmarkList(bf, "basic", runs, func() (benchList, error) {
		return basic.NewSkipList(skiplist.Int64Comparator, basic.DefaultMaxLevel, p, seed), nil
	})
}

func benchmarkList(bf *datastream.BenchFile, label string, runs int, newList func() (benchList, error)) (benchStats, error) {
	stats := benchStats{label: label, avgSteps: math.NaN()}
	durations := make([]float64, 0, runs)

	for i := 0; i < runs; i++ {
		l, err := newList()
		if err != nil {
			return stats, err
		}

		start := time.Now()
		if _, err := datastream.Replay(l, bf.Ops); err != nil {
			return stats, err
		}
		durations = append(durations, float64(time.Since(start).Microseconds())/1000.0)

		if i == 0 {
			if err := analyTool.CheckStruct[int64](l, skiplist.Int64Comparator); err != nil {
				return stats, fmt.Errorf("%s: %w", label, err)
			}
			stats.avgSteps, _ = analyTool.AnalyzeStep[int64](l, bf.Dist)
			stats.nodes = l.Nodes()
			stats.size = l.Len()
		}
	}

	sort.Float64s(durations)
	sum := 0.0
	for _, v := range durations {
		sum += v
	}
	stats.avgMs = sum / float64(len(durations))
	stats.minMs = durations[0]
	stats.maxMs = durations[len(durations)-1]

	return stats, nil
}

// runBenchmark 對單一檔案同時測試所有 lane 設定，每個 goroutine 各自擁有自己的 list
func runBenchmark(bf *datastream.BenchFile, lanes []int) ([]benchStats, error) {
	results := make([]benchStats, len(lanes), len(lanes)+1)
	g := errgroup.Group{}

	for i, n := range lanes {
		i, n := i, n
		g.Go(func() error {
			conf := lane.Config{
				Lanes:    n,
				P:        opts.List.P,
				MaxNodes: opts.List.MaxNodes,
				Seed:     opts.Seed,
			}

			stats, err := benchmarkConfig(bf, conf, opts.Runs)
			if err != nil {
				return err
			}

			results[i] = stats
			return nil
		})
	}

	var baseline benchStats
	if opts.Baseline {
		g.Go(func() error {
			var err error
			baseline, err = benchmarkBaseline(bf, opts.List.P, opts.Seed, opts.Runs)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Baseline {
		results = append(results, baseline)
	}

	return results, nil
}

func renderTable(bf *datastream.BenchFile, results []benchStats) {
	rows := make([][]string, 0, len(results))
	for _, s := range results {
		steps := "N/A"
		if !math.IsNaN(s.avgSteps) {
			steps = fmt.Sprintf("%.3f", s.avgSteps)
		}
		rows = append(rows, []string{
			s.label,
			fmt.Sprintf("%.2f", opts.List.P),
			fmt.Sprintf("%d", opts.Runs),
			fmt.Sprintf("%.3f", s.avgMs),
			fmt.Sprintf("%.3f", s.minMs),
			fmt.Sprintf("%.3f", s.maxMs),
			fmt.Sprintf("%.2f", float64(len(bf.Ops))/(s.avgMs/1000.0)),
			steps,
			fmt.Sprintf("%d/%d", s.nodes, s.size),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Lanes", "P", "Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Ops/s", "AvgSteps", "Nodes/Elems"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	lanes, err := parseLanes(opts.List.Lanes)
	if err != nil {
		level.Error(logger).Log("msg", "invalid --list.lanes", "err", err)
		os.Exit(2)
	}

	if opts.Runs < 1 {
		level.Error(logger).Log("msg", "--runs must be positive", "runs", opts.Runs)
		os.Exit(2)
	}

	var benchPaths []string

	switch {
	case opts.Bench.Dir != "":
		benchPaths, err = collectBenchFilesFromDir(opts.Bench.Dir)
		if err != nil {
			level.Error(logger).Log("msg", "failed to scan directory", "dir", opts.Bench.Dir, "err", err)
			os.Exit(1)
		}
	case opts.Bench.File != "":
		benchPaths = []string{opts.Bench.File}
	}

	if len(benchPaths) == 0 {
		level.Error(logger).Log("msg", "no bench files, use --bench.file or --bench.dir")
		os.Exit(2)
	}

	for _, path := range benchPaths {
		bf, err := datastream.ReadBenchFile(path)
		if err != nil {
			level.Error(logger).Log("msg", "failed to read bench file", "file", path, "err", err)
			continue
		}

		level.Info(logger).Log("msg", "benchmarking", "file", path, "ops", len(bf.Ops), "entropy", datastream.EntropyFromDist(bf.Dist))

		results, err := runBenchmark(bf, lanes)
		if err != nil {
			level.Error(logger).Log("msg", "benchmark failed", "file", path, "err", err)
			continue
		}

		renderTable(bf, results)
	}
}
