package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/Hakuto4838/LaneList.git/datastream"
)

// parseScientificNotation 解析科學記號字串（如 "1e5"）為整數
func parseScientificNotation(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// formatScientific 將數字格式化為科學記號（用於檔名）
func formatScientific(n int) string {
	if n == 0 {
		return "0"
	}

	exp, divisor := 0, 1
	for n/divisor >= 10 {
		divisor *= 10
		exp++
	}

	coefficient := float64(n) / float64(divisor)
	if coefficient == float64(int(coefficient)) {
		return fmt.Sprintf("%de%d", int(coefficient), exp)
	}
	return fmt.Sprintf("%.1fe%d", coefficient, exp)
}

// formatDecimal 將浮點數格式化為不含小數點的字串（用於檔名），保留兩位小數
func formatDecimal(f float64) string {
	val := int(f*100 + 0.5)
	switch {
	case val%100 == 0:
		return fmt.Sprintf("%d", val/100)
	case val%10 == 0:
		return fmt.Sprintf("%d_%d", val/100, (val%100)/10)
	default:
		return fmt.Sprintf("%d_%02d", val/100, val%100)
	}
}

func newKeyStream(n int, a, b float64, seed int64) datastream.KeyStream {
	if a == 0 {
		return datastream.NewUniformDataGenerator(n, seed)
	}
	return datastream.NewZipfDataGenerator(n, a, b, seed)
}

func main() {
	var (
		out         string
		path        string
		nStr        string
		kStr        string
		a, b        float64
		seed        int64
		phase1Ratio float64
		deleteRatio float64
		nums        int
		verbose     bool
	)

	flag.StringVar(&nStr, "n", "0", "number of keys (supports scientific notation, e.g. 1e5)")
	flag.Float64Var(&a, "a", 1.07, "Zipf parameter a (0 selects the uniform distribution)")
	flag.Float64Var(&b, "b", 0.0, "Zipf parameter b")
	flag.StringVar(&kStr, "k", "0", "number of operations to generate (supports scientific notation, e.g. 1e6)")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for the generators")
	flag.Float64Var(&phase1Ratio, "phase1Ratio", 0.5, "ratio of phase1 operations")
	flag.Float64Var(&deleteRatio, "deleteRatio", 0.1, "ratio of delete operations")
	flag.IntVar(&nums, "nums", 1, "number of files to generate")
	flag.StringVar(&out, "out", "", "output filename prefix (derived from the parameters when empty)")
	flag.StringVar(&path, "path", ".", "output directory")
	flag.BoolVar(&verbose, "verbose", false, "verbose logging")
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	if !verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	n, err := parseScientificNotation(nStr)
	if err != nil {
		level.Error(logger).Log("msg", "invalid -n", "value", nStr, "err", err)
		os.Exit(2)
	}

	k, err := parseScientificNotation(kStr)
	if err != nil {
		level.Error(logger).Log("msg", "invalid -k", "value", kStr, "err", err)
		os.Exit(2)
	}

	if out == "" {
		out = fmt.Sprintf("bench_n%s_k%s_a%s_b%s_p1r%s_dr%s",
			formatScientific(n),
			formatScientific(k),
			formatDecimal(a),
			formatDecimal(b),
			formatDecimal(phase1Ratio),
			formatDecimal(deleteRatio))
	}

	if path != "." && path != "" {
		if err := os.MkdirAll(path, 0755); err != nil {
			level.Error(logger).Log("msg", "failed to create output directory", "path", path, "err", err)
			os.Exit(1)
		}
	}

	level.Debug(logger).Log(
		"msg", "generating bench files",
		"n", n, "k", k, "a", a, "b", b,
		"phase1Ratio", phase1Ratio, "deleteRatio", deleteRatio,
		"seed", seed, "nums", nums,
	)

	for i := 0; i < nums; i++ {
		filename := fmt.Sprintf("%s.bin", out)
		if nums > 1 {
			filename = fmt.Sprintf("%s_%d.bin", out, i)
		}
		outfile := filepath.Join(path, filename)
		fileSeed := seed + int64(i)

		bf, err := datastream.GenerateBenchFile(newKeyStream(n, a, b, fileSeed), k, phase1Ratio, deleteRatio, fileSeed)
		if err != nil {
			level.Error(logger).Log("msg", "failed to generate operations", "file", outfile, "err", err)
			os.Exit(1)
		}

		if err := datastream.WriteBenchFile(outfile, bf); err != nil {
			level.Error(logger).Log("msg", "failed to write bench file", "file", outfile, "err", err)
			os.Exit(1)
		}

		level.Info(logger).Log("msg", "bench file written", "file", outfile, "ops", len(bf.Ops), "entropy", datastream.EntropyFromDist(bf.Dist))
	}
}
