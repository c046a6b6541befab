package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"

	"github.com/Hakuto4838/LaneList.git/datastream"
	"github.com/Hakuto4838/LaneList.git/saalgo"
	"github.com/Hakuto4838/LaneList.git/skiplist"
	"github.com/Hakuto4838/LaneList.git/skiplist/analyTool"
	"github.com/Hakuto4838/LaneList.git/skiplist/lane"
)

// laneSolution 是一組 lane list 設定，成本為加權平均搜尋步數加上額外節點的代價
type laneSolution struct {
	lanes    int
	p        float64
	maxLanes int
	nodeCost float64
	seed     int64
	bf       *datastream.BenchFile
	cache    map[[2]float64]float64
}

func (s *laneSolution) Clone() saalgo.Solution {
	cp := *s
	return &cp
}

func (s *laneSolution) GetCost() float64 {
	key := [2]float64{float64(s.lanes), s.p}
	if c, ok := s.cache[key]; ok {
		return c
	}

	c := evaluate(s.bf, lane.Config{Lanes: s.lanes, P: s.p, Seed: s.seed}, s.nodeCost)
	s.cache[key] = c

	return c
}

// GenerateNeighbor 隨機調整 lane 數量或升階機率其中之一
func (s *laneSolution) GenerateNeighbor(rng *rand.Rand) saalgo.Solution {
	next := s.Clone().(*laneSolution)

	if rng.Intn(2) == 0 {
		next.lanes += rng.Intn(3) - 1
		next.lanes = max(1, min(next.lanes, s.maxLanes))
	} else {
		next.p += (rng.Float64() - 0.5) * 0.2
		next.p = math.Max(0.05, math.Min(next.p, 0.95))
	}

	return next
}

// evaluate 重播 bf 並計算成本，設定無法使用時回傳 +Inf
func evaluate(bf *datastream.BenchFile, conf lane.Config, nodeCost float64) float64 {
	l, err := lane.New(skiplist.Int64Comparator, conf)
	if err != nil {
		return math.Inf(1)
	}

	if _, err := datastream.Replay(l, bf.Ops); err != nil {
		return math.Inf(1)
	}

	steps, _ := analyTool.AnalyzeStep[int64](l, bf.Dist)
	if l.Len() == 0 {
		return steps
	}

	overhead := float64(l.Nodes()-l.Len()) / float64(l.Len())

	return steps + nodeCost*overhead
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

	bf, err := datastream.ReadBenchFile(opts.File)
	if err != nil {
		level.Error(logger).Log("msg", "failed to read bench file", "file", opts.File, "err", err)
		os.Exit(1)
	}

	initial := &laneSolution{
		lanes:    opts.Search.Lanes,
		p:        opts.Search.P,
		maxLanes: opts.Search.MaxLanes,
		nodeCost: opts.Search.NodeCost,
		seed:     opts.Seed,
		bf:       bf,
		cache:    make(map[[2]float64]float64),
	}

	conf := saalgo.DefaultConfig()
	conf.InitialTemp = opts.Search.Temp
	conf.CoolingRate = opts.Search.Cooling
	conf.Iterations = opts.Search.PerTemp
	conf.MaxIterations = opts.Search.Iterations
	conf.RandomSeed = opts.Seed
	conf.ProgressInterval = opts.Search.PerTemp
	conf.ProgressCallback = func(iteration, maxIterations int, temperature, bestCost, currentCost float64) {
		level.Debug(logger).Log(
			"msg", "annealing",
			"iteration", iteration,
			"of", maxIterations,
			"temperature", temperature,
			"best", bestCost,
			"current", currentCost,
		)
	}

	level.Info(logger).Log("msg", "tuning", "file", opts.File, "ops", len(bf.Ops))

	sa := saalgo.NewSimulatedAnnealing(conf)
	best, cost := sa.Run(initial)
	b := best.(*laneSolution)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"", "Lanes", "P", "Cost"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.Append([]string{"initial", fmt.Sprintf("%d", initial.lanes), fmt.Sprintf("%.3f", initial.p), fmt.Sprintf("%.4f", initial.GetCost())})
	table.Append([]string{"best", fmt.Sprintf("%d", b.lanes), fmt.Sprintf("%.3f", b.p), fmt.Sprintf("%.4f", cost)})
	table.Render()

	level.Info(logger).Log("msg", "done", "iterations", sa.GetIterations(), "evaluated", len(initial.cache))
}
